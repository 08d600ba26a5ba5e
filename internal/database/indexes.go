package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const PublishedMenusCollection = "published_menus"

func EnsurePublishedMenuIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(PublishedMenusCollection).Indexes()

	menuIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "menuId", Value: 1}},
		Options: options.Index().
			SetName("menuId_unique").
			SetUnique(true),
	}

	log.Println("EnsurePublishedMenuIndexes: creating menuId_unique index")
	_, err := indexes.CreateOne(ctx, menuIDIndex)
	if err != nil {
		log.Println("EnsurePublishedMenuIndexes: menuId index error:", err)
		return err
	}
	log.Println("EnsurePublishedMenuIndexes: menuId_unique index created")
	return nil
}
