package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/database"
	"digitalmenu/internal/middleware"
	"digitalmenu/internal/models"
)

const testSecret = "test-secret"

type fakePublisher struct {
	published map[string]models.PublishedMenu
	fail      bool
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{published: map[string]models.PublishedMenu{}}
}

func (f *fakePublisher) Publish(_ context.Context, menu models.PopulatedMenu, template *models.Template, customization models.TemplateCustomization) (models.PublishedMenu, error) {
	if f.fail {
		return models.PublishedMenu{}, errors.New("mongo down")
	}
	doc := models.PublishedMenu{
		MenuID:        menu.ID,
		Menu:          menu,
		Template:      template,
		Customization: customization,
		PublishedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	f.published[menu.ID] = doc
	return doc, nil
}

func (f *fakePublisher) Published(_ context.Context, menuID string) (models.PublishedMenu, error) {
	doc, ok := f.published[menuID]
	if !ok {
		return models.PublishedMenu{}, database.ErrNotPublished
	}
	return doc, nil
}

func (f *fakePublisher) Unpublish(_ context.Context, menuID string) (bool, error) {
	_, ok := f.published[menuID]
	delete(f.published, menuID)
	return ok, nil
}

func setupRouter(t *testing.T, publisher MenuPublisher) (*gin.Engine, *catalog.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	store, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	uploads := NewUploads(t.TempDir())

	r := gin.New()
	r.POST("/auth/login", Login(store, testSecret, time.Hour))
	r.POST("/auth/logout", Logout(store))
	r.GET("/public/menu", GetPublicMenu(store))
	r.POST("/public/complaints", CreateComplaint(store))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(testSecret))
	admin.GET("/session", Session(store))
	admin.GET("/items", GetItems(store))
	admin.GET("/items/:id", GetItem(store))
	admin.POST("/items", CreateItem(store))
	admin.PUT("/items/:id", UpdateItem(store))
	admin.DELETE("/items/:id", DeleteItem(store))
	admin.POST("/items/:id/image", UploadItemImage(store, uploads))
	admin.POST("/categories", CreateCategory(store))
	admin.PUT("/categories/:id", UpdateCategory(store))
	admin.DELETE("/categories/:id", DeleteCategory(store))
	admin.POST("/menus", CreateMenu(store))
	admin.GET("/menus/:id/populated", GetPopulatedMenu(store))
	admin.GET("/menus/:id/published", GetPublishedMenu(publisher))
	admin.PUT("/menus/:id", UpdateMenu(store))
	admin.DELETE("/menus/:id", DeleteMenu(store, publisher))
	admin.POST("/menus/:id/publish", PublishMenu(store, publisher))
	admin.GET("/active-menu", GetActiveMenu(store))
	admin.PUT("/active-menu", SetActiveMenu(store))
	admin.PUT("/active-template", SetActiveTemplate(store))
	admin.PUT("/template-customization", UpdateTemplateCustomization(store))
	admin.GET("/complaints", GetComplaints(store))
	admin.PUT("/complaints/:id", UpdateComplaint(store))
	admin.DELETE("/complaints/:id", DeleteComplaint(store))
	admin.PUT("/preferences", UpdatePreferences(store))

	return r, store
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "Owner@Example.com",
		"password": "anything",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, w, &body)
	if body.Token == "" {
		t.Fatal("expected a token")
	}
	return body.Token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestLoginTokenOpensAdminAPI(t *testing.T) {
	r, store := setupRouter(t, nil)

	if w := doJSON(t, r, http.MethodGet, "/admin/api/session", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@b.c"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without password, got %d", w.Code)
	}

	token := login(t, r)
	if !store.Authenticated() {
		t.Fatal("login should mark the store authenticated")
	}

	w := doJSON(t, r, http.MethodGet, "/admin/api/session", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
	var session struct {
		Authenticated bool   `json:"authenticated"`
		Subject       string `json:"subject"`
	}
	decode(t, w, &session)
	if !session.Authenticated || session.Subject != "owner@example.com" {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestItemLifecycle(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/admin/api/items", token, map[string]interface{}{
		"name":        map[string]string{"primary": " Falafel ", "alternate": "فلافل"},
		"price":       5.5,
		"dietaryTags": []string{"vegan", "VEGAN"},
		"sizes": []map[string]interface{}{
			{"label": map[string]string{"primary": "Large"}, "price": 7},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var created models.Item
	decode(t, w, &created)
	if created.ID == "" || created.Name.Primary != "Falafel" || created.Price.String() != "5.5" {
		t.Fatalf("unexpected created item %+v", created)
	}
	if len(created.DietaryTags) != 1 || len(created.Sizes) != 1 {
		t.Fatalf("expected one tag and one size, got %+v", created)
	}

	path := "/admin/api/items/" + created.ID
	w = doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{"price": "6.25"})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}
	var updated models.Item
	decode(t, w, &updated)
	if updated.Price.String() != "6.25" || updated.Name.Alternate != "فلافل" {
		t.Fatalf("update should only change price, got %+v", updated)
	}

	if w := doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, path, token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete returned %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, path, token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, path, token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestCreateItemRejections(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	cases := []struct {
		name    string
		payload map[string]interface{}
		status  int
	}{
		{"missing price", map[string]interface{}{"name": map[string]string{"primary": "X"}}, http.StatusBadRequest},
		{"negative price", map[string]interface{}{"name": map[string]string{"primary": "X"}, "price": -1}, http.StatusBadRequest},
		{"unknown tag", map[string]interface{}{"name": map[string]string{"primary": "X"}, "price": 1, "dietaryTags": []string{"paleo"}}, http.StatusBadRequest},
		{"spice out of range", map[string]interface{}{"name": map[string]string{"primary": "X"}, "price": 1, "spiceLevel": 9}, http.StatusBadRequest},
		{"duplicate id", map[string]interface{}{"id": "item-1", "name": map[string]string{"primary": "X"}, "price": 1}, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/admin/api/items", token, tc.payload)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetItemsSearchAndPaging(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	var page struct {
		Data       []models.Item `json:"data"`
		Pagination struct {
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}

	w := doJSON(t, r, http.MethodGet, "/admin/api/items?limit=4&page=2", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d", w.Code)
	}
	decode(t, w, &page)
	if len(page.Data) != 2 || page.Pagination.Total != 6 || page.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected page %+v", page)
	}

	w = doJSON(t, r, http.MethodGet, "/admin/api/items?search=salmon", token, nil)
	decode(t, w, &page)
	if len(page.Data) != 1 || page.Data[0].ID != "item-3" {
		t.Fatalf("expected salmon search to return item-3, got %+v", page.Data)
	}

	if w := doJSON(t, r, http.MethodGet, "/admin/api/items?limit=500", token, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized limit, got %d", w.Code)
	}
}

func TestPopulatedMenuReportsMissingCategory(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	if w := doJSON(t, r, http.MethodDelete, "/admin/api/categories/cat-2", token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("category delete returned %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/admin/api/menus/menu-1/populated", token, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	decode(t, w, &body)
	if body["categoryId"] != "cat-2" || body["menuId"] != "menu-1" {
		t.Fatalf("unexpected conflict body %v", body)
	}

	// Dropping the broken association repairs the menu.
	w = doJSON(t, r, http.MethodPut, "/admin/api/menus/menu-1", token, map[string]interface{}{
		"categories": []map[string]interface{}{
			{"categoryId": "cat-1", "itemIds": []string{"item-2", "item-1"}},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("menu update returned %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, "/admin/api/menus/menu-1/populated", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected repaired menu to populate, got %d", w.Code)
	}
	var menu models.PopulatedMenu
	decode(t, w, &menu)
	if len(menu.Categories) != 1 || menu.Categories[0].Items[0].ID != "item-2" {
		t.Fatalf("expected reordered single category, got %+v", menu)
	}

	if w := doJSON(t, r, http.MethodGet, "/admin/api/menus/nope/populated", token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown menu, got %d", w.Code)
	}
}

func TestPublishMenu(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r, _ := setupRouter(t, nil)
		token := login(t, r)
		if w := doJSON(t, r, http.MethodPost, "/admin/api/menus/menu-1/publish", token, nil); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		publisher := newFakePublisher()
		r, _ := setupRouter(t, publisher)
		token := login(t, r)

		doJSON(t, r, http.MethodPut, "/admin/api/active-template", token, map[string]string{"templateId": "tpl-2"})
		w := doJSON(t, r, http.MethodPost, "/admin/api/menus/menu-1/publish", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("publish returned %d: %s", w.Code, w.Body.String())
		}
		doc, ok := publisher.published["menu-1"]
		if !ok || len(doc.Menu.Categories) != 3 || doc.Template == nil || doc.Template.ID != "tpl-2" {
			t.Fatalf("unexpected snapshot %+v", doc)
		}

		if w := doJSON(t, r, http.MethodDelete, "/admin/api/menus/menu-1", token, nil); w.Code != http.StatusNoContent {
			t.Fatalf("menu delete returned %d", w.Code)
		}
		if _, ok := publisher.published["menu-1"]; ok {
			t.Fatal("deleting a menu should remove its snapshot")
		}
	})

	t.Run("store failure", func(t *testing.T) {
		publisher := newFakePublisher()
		publisher.fail = true
		r, _ := setupRouter(t, publisher)
		token := login(t, r)
		if w := doJSON(t, r, http.MethodPost, "/admin/api/menus/menu-2/publish", token, nil); w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPublicMenuFollowsActiveSelection(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	if w := doJSON(t, r, http.MethodGet, "/public/menu", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with no active menu, got %d", w.Code)
	}

	doJSON(t, r, http.MethodPut, "/admin/api/active-menu", token, map[string]string{"menuId": "menu-2"})
	doJSON(t, r, http.MethodPut, "/admin/api/template-customization", token, map[string]string{"primaryColor": "#ff0000"})

	w := doJSON(t, r, http.MethodGet, "/public/menu?lang=ar", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public menu returned %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Menu          models.MenuView              `json:"menu"`
		Customization models.TemplateCustomization `json:"customization"`
	}
	decode(t, w, &body)
	if body.Menu.Name != "عرض الغداء" || len(body.Menu.Categories) != 4 {
		t.Fatalf("unexpected localized menu %+v", body.Menu)
	}
	if body.Customization.PrimaryColor != "#ff0000" || body.Customization.SecondaryColor != models.DefaultSecondaryColor {
		t.Fatalf("unexpected customization %+v", body.Customization)
	}

	if w := doJSON(t, r, http.MethodPut, "/admin/api/template-customization", token, map[string]string{"primaryColor": "red"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-hex color, got %d", w.Code)
	}

	doJSON(t, r, http.MethodPut, "/admin/api/active-menu", token, map[string]string{"menuId": "ghost"})
	w = doJSON(t, r, http.MethodGet, "/admin/api/active-menu", token, nil)
	var active map[string]interface{}
	decode(t, w, &active)
	if active["activeMenuId"] != "ghost" || active["menu"] != nil {
		t.Fatalf("stale selection should read as no menu, got %v", active)
	}
}

func TestComplaintsFlow(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/public/complaints", "", map[string]string{
		"customerName": "Guest",
		"email":        "guest@example.com",
		"message":      "Cold soup",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create complaint returned %d: %s", w.Code, w.Body.String())
	}
	var created models.Complaint
	decode(t, w, &created)
	if created.Status != models.ComplaintPending || created.ID == "" || created.Date.IsZero() {
		t.Fatalf("unexpected complaint %+v", created)
	}

	if w := doJSON(t, r, http.MethodPost, "/public/complaints", "", map[string]string{"customerName": "x", "email": "bad", "message": "m"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}

	var page struct {
		Data []models.Complaint `json:"data"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/admin/api/complaints?status=pending", token, nil), &page)
	if len(page.Data) != 3 {
		t.Fatalf("expected 3 pending complaints, got %d", len(page.Data))
	}

	path := "/admin/api/complaints/" + created.ID
	if w := doJSON(t, r, http.MethodPut, path, token, map[string]string{"status": "closed"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPut, path, token, map[string]string{"status": "resolved"})
	if w.Code != http.StatusOK {
		t.Fatalf("status update returned %d", w.Code)
	}
	var updated models.Complaint
	decode(t, w, &updated)
	if updated.Status != models.ComplaintResolved || updated.Message != "Cold soup" {
		t.Fatalf("unexpected updated complaint %+v", updated)
	}

	if w := doJSON(t, r, http.MethodDelete, path, token, nil); w.Code != http.StatusOK {
		t.Fatalf("delete returned %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPut, path, token, map[string]string{"status": "pending"}); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestLogoutRestoresSeedButKeepsPreferences(t *testing.T) {
	r, store := setupRouter(t, nil)
	token := login(t, r)

	doJSON(t, r, http.MethodPut, "/admin/api/preferences", token, map[string]interface{}{"toggleTheme": true, "language": "ar"})
	doJSON(t, r, http.MethodDelete, "/admin/api/items/item-1", token, nil)
	doJSON(t, r, http.MethodPut, "/admin/api/active-menu", token, map[string]string{"menuId": "menu-1"})

	if w := doJSON(t, r, http.MethodPost, "/auth/logout", "", nil); w.Code != http.StatusOK {
		t.Fatalf("logout returned %d", w.Code)
	}

	if _, ok := store.Item("item-1"); !ok {
		t.Fatal("expected item-1 to be restored")
	}
	if store.ActiveMenuID() != "" || store.Authenticated() {
		t.Fatal("expected session state to be cleared")
	}
	prefs := store.Preferences()
	if prefs.Theme != models.ThemeDark || prefs.Language != models.LocaleArabic {
		t.Fatalf("preferences should survive logout, got %+v", prefs)
	}
}

func TestUploadItemImageRejectsMissingFile(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/items/item-1/image", bytes.NewBufferString(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/api/items/nope/image", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown item, got %d", w.Code)
	}
}

func TestPublishedMenuLookup(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r, _ := setupRouter(t, nil)
		token := login(t, r)
		if w := doJSON(t, r, http.MethodGet, "/admin/api/menus/menu-1/published", token, nil); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		r, _ := setupRouter(t, newFakePublisher())
		token := login(t, r)

		if w := doJSON(t, r, http.MethodGet, "/admin/api/menus/menu-1/published", token, nil); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 before publishing, got %d: %s", w.Code, w.Body.String())
		}
		if w := doJSON(t, r, http.MethodPost, "/admin/api/menus/menu-1/publish", token, nil); w.Code != http.StatusOK {
			t.Fatalf("publish returned %d", w.Code)
		}

		w := doJSON(t, r, http.MethodGet, "/admin/api/menus/menu-1/published", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 after publishing, got %d: %s", w.Code, w.Body.String())
		}
		var doc models.PublishedMenu
		decode(t, w, &doc)
		if doc.MenuID != "menu-1" || len(doc.Menu.Categories) != 3 {
			t.Fatalf("unexpected snapshot %+v", doc)
		}
	})
}

func TestCreateMenuRejections(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	cases := []struct {
		name    string
		payload map[string]interface{}
		status  int
	}{
		{"missing name", map[string]interface{}{"categories": []interface{}{}}, http.StatusBadRequest},
		{"blank name", map[string]interface{}{"name": map[string]string{"primary": "   "}}, http.StatusBadRequest},
		{"missing category id", map[string]interface{}{
			"name":       map[string]string{"primary": "Brunch"},
			"categories": []map[string]interface{}{{"itemIds": []string{"item-1"}}},
		}, http.StatusBadRequest},
		{"duplicate id", map[string]interface{}{"id": "menu-1", "name": map[string]string{"primary": "Again"}}, http.StatusConflict},
		{"no categories", map[string]interface{}{"name": map[string]string{"primary": "Empty"}}, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/admin/api/menus", token, tc.payload)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateMenuKeepsItemOrder(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/admin/api/menus", token, map[string]interface{}{
		"id":          "brunch",
		"name":        map[string]string{"primary": "Brunch", "alternate": "فطور متأخر"},
		"description": map[string]string{},
		"categories": []map[string]interface{}{
			{"categoryId": " cat-2 ", "itemIds": []string{"item-3", " ", "ghost", "item-1"}},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var menu models.Menu
	decode(t, w, &menu)
	if menu.Description != nil {
		t.Fatalf("empty description should not be stored, got %+v", menu.Description)
	}
	assoc := menu.Categories[0]
	if assoc.CategoryID != "cat-2" || len(assoc.ItemIDs) != 3 ||
		assoc.ItemIDs[0] != "item-3" || assoc.ItemIDs[1] != "ghost" || assoc.ItemIDs[2] != "item-1" {
		t.Fatalf("unexpected association %+v", assoc)
	}

	w = doJSON(t, r, http.MethodGet, "/admin/api/menus/brunch/populated", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("populate returned %d", w.Code)
	}
	var populated models.PopulatedMenu
	decode(t, w, &populated)
	items := populated.Categories[0].Items
	if len(items) != 2 || items[0].ID != "item-3" || items[1].ID != "item-1" {
		t.Fatalf("expected item-3 then item-1, got %+v", items)
	}
}

func TestCategoryCreateAndUpdate(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	create := []struct {
		name    string
		payload map[string]interface{}
		status  int
	}{
		{"missing name", map[string]interface{}{"id": "cat-x"}, http.StatusBadRequest},
		{"blank name", map[string]interface{}{"name": map[string]string{"primary": " "}}, http.StatusBadRequest},
		{"duplicate id", map[string]interface{}{"id": "cat-1", "name": map[string]string{"primary": "Dup"}}, http.StatusConflict},
		{"created", map[string]interface{}{
			"id":          "cat-desserts",
			"name":        map[string]string{"primary": "Desserts", "alternate": "حلويات"},
			"description": map[string]string{"primary": "Sweet things"},
		}, http.StatusCreated},
	}
	for _, tc := range create {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/admin/api/categories", token, tc.payload)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}

	w := doJSON(t, r, http.MethodPut, "/admin/api/categories/cat-1", token, map[string]interface{}{
		"description": map[string]string{},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}
	var updated models.Category
	decode(t, w, &updated)
	if updated.Description != nil || updated.Name.Primary != "Appetizers" {
		t.Fatalf("expected description cleared and name kept, got %+v", updated)
	}

	update := []struct {
		name    string
		path    string
		payload map[string]interface{}
		status  int
	}{
		{"empty patch", "/admin/api/categories/cat-1", map[string]interface{}{}, http.StatusBadRequest},
		{"blank name", "/admin/api/categories/cat-1", map[string]interface{}{"name": map[string]string{"primary": "  "}}, http.StatusBadRequest},
		{"unknown id", "/admin/api/categories/nope", map[string]interface{}{"name": map[string]string{"primary": "X"}}, http.StatusNotFound},
	}
	for _, tc := range update {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPut, tc.path, token, tc.payload)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestComplaintFiltersAndCounts(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)

	type counts struct {
		Total      int `json:"total"`
		Pending    int `json:"pending"`
		InProgress int `json:"inProgress"`
		Resolved   int `json:"resolved"`
	}
	var page struct {
		Data   []models.Complaint `json:"data"`
		Counts counts             `json:"counts"`
	}

	cases := []struct {
		query string
		ids   []string
	}{
		{"", []string{"complaint-1", "complaint-2", "complaint-3", "complaint-4", "complaint-5"}},
		{"?status=all&category=all", []string{"complaint-1", "complaint-2", "complaint-3", "complaint-4", "complaint-5"}},
		{"?category=food%20quality", []string{"complaint-1", "complaint-4"}},
		{"?category=Food%20Quality&status=pending&search=HAIR", []string{"complaint-4"}},
		{"?search=example.com&status=resolved", []string{"complaint-3", "complaint-5"}},
		{"?search=ahmed", []string{"complaint-5"}},
		{"?search=nothing-matches", []string{}},
	}
	for _, tc := range cases {
		w := doJSON(t, r, http.MethodGet, "/admin/api/complaints"+tc.query, token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%q returned %d", tc.query, w.Code)
		}
		page.Data = nil
		decode(t, w, &page)
		if len(page.Data) != len(tc.ids) {
			t.Fatalf("%q: expected %v, got %+v", tc.query, tc.ids, page.Data)
		}
		for i, id := range tc.ids {
			if page.Data[i].ID != id {
				t.Fatalf("%q: expected %v, got %+v", tc.query, tc.ids, page.Data)
			}
		}
		if page.Counts != (counts{Total: 5, Pending: 2, InProgress: 1, Resolved: 2}) {
			t.Fatalf("%q: counts should ignore filters, got %+v", tc.query, page.Counts)
		}
	}

	if w := doJSON(t, r, http.MethodGet, "/admin/api/complaints?status=closed", token, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestUpdateItemClearsOptionalAttributes(t *testing.T) {
	r, _ := setupRouter(t, nil)
	token := login(t, r)
	path := "/admin/api/items/item-2"

	w := doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{"calories": 300, "spiceLevel": 2, "prepTimeMinutes": 10})
	if w.Code != http.StatusOK {
		t.Fatalf("set returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{"clear": []string{"calories", "spiceLevel"}})
	if w.Code != http.StatusOK {
		t.Fatalf("clear returned %d: %s", w.Code, w.Body.String())
	}
	var item models.Item
	decode(t, w, &item)
	if item.Calories != nil || item.SpiceLevel != nil {
		t.Fatalf("expected calories and spice level cleared, got %+v", item)
	}
	if item.PrepTimeMinutes == nil || *item.PrepTimeMinutes != 10 {
		t.Fatalf("prep time should be untouched, got %v", item.PrepTimeMinutes)
	}

	if w := doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{"clear": []string{"price"}}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a required field, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{"calories": 5, "clear": []string{"calories"}}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for set and clear together, got %d", w.Code)
	}
}
