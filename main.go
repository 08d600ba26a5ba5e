package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/config"
	"digitalmenu/internal/database"
	"digitalmenu/internal/handlers"
	"digitalmenu/internal/middleware"
)

func main() {
	config.Load()
	gin.SetMode(config.AppEnv.GinMode)
	handlers.RegisterValidators()

	store, err := catalog.New()
	if err != nil {
		log.Fatal("seed load failed: ", err)
	}

	// Publishing stays off unless a Mongo URI is configured. The interface
	// must stay nil in that case so handlers answer 503.
	var publisher handlers.MenuPublisher
	if config.AppEnv.PublishingEnabled() {
		client, err := database.Connect(config.AppEnv.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		db := client.Database(config.AppEnv.DBName)
		log.Println("MongoDB connected to:", db.Name())

		if err := database.EnsurePublishedMenuIndexes(db); err != nil {
			log.Printf("published menu index warning: %v", err)
		}
		publisher = database.NewMenuPublisher(db)
	} else {
		log.Println("MONGO_URI not set, menu publishing disabled")
	}

	uploads := handlers.NewUploads(config.AppEnv.PublicDir)
	secret := config.AppEnv.JWTSecret

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppEnv.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Static("/uploads", config.AppEnv.PublicDir+"/uploads")

	r.GET("/", handlers.Home())
	r.GET("/health", handlers.Health(config.AppEnv.PublishingEnabled()))

	r.POST("/auth/login", handlers.Login(store, secret, config.AppEnv.AccessTokenTTL))
	r.POST("/auth/logout", handlers.Logout(store))

	r.GET("/public/menu", handlers.GetPublicMenu(store))
	r.GET("/public/templates", handlers.GetPublicTemplates(store))
	r.POST("/public/complaints", handlers.CreateComplaint(store))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(secret))
	{
		admin.GET("/session", handlers.Session(store))

		admin.GET("/items", handlers.GetItems(store))
		admin.GET("/items/:id", handlers.GetItem(store))
		admin.POST("/items", handlers.CreateItem(store))
		admin.PUT("/items/:id", handlers.UpdateItem(store))
		admin.DELETE("/items/:id", handlers.DeleteItem(store))
		admin.POST("/items/:id/image", handlers.UploadItemImage(store, uploads))

		admin.GET("/categories", handlers.GetCategories(store))
		admin.GET("/categories/:id", handlers.GetCategory(store))
		admin.POST("/categories", handlers.CreateCategory(store))
		admin.PUT("/categories/:id", handlers.UpdateCategory(store))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(store))

		admin.GET("/menus", handlers.GetMenus(store))
		admin.GET("/menus/:id", handlers.GetMenu(store))
		admin.GET("/menus/:id/populated", handlers.GetPopulatedMenu(store))
		admin.POST("/menus", handlers.CreateMenu(store))
		admin.PUT("/menus/:id", handlers.UpdateMenu(store))
		admin.DELETE("/menus/:id", handlers.DeleteMenu(store, publisher))
		admin.POST("/menus/:id/publish", handlers.PublishMenu(store, publisher))
		admin.GET("/menus/:id/published", handlers.GetPublishedMenu(publisher))

		admin.GET("/active-menu", handlers.GetActiveMenu(store))
		admin.PUT("/active-menu", handlers.SetActiveMenu(store))

		admin.GET("/templates", handlers.GetTemplates(store))
		admin.GET("/active-template", handlers.GetActiveTemplate(store))
		admin.PUT("/active-template", handlers.SetActiveTemplate(store))
		admin.GET("/template-customization", handlers.GetTemplateCustomization(store))
		admin.PUT("/template-customization", handlers.UpdateTemplateCustomization(store))
		admin.POST("/template-customization/logo", handlers.UploadLogo(store, uploads))

		admin.GET("/complaints", handlers.GetComplaints(store))
		admin.POST("/complaints", handlers.CreateComplaint(store))
		admin.PUT("/complaints/:id", handlers.UpdateComplaint(store))
		admin.DELETE("/complaints/:id", handlers.DeleteComplaint(store))

		admin.GET("/preferences", handlers.GetPreferences(store))
		admin.PUT("/preferences", handlers.UpdatePreferences(store))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
