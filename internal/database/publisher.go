package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"digitalmenu/internal/models"
)

var ErrNotPublished = errors.New("menu not published")

// MenuPublisher writes populated menu snapshots for the public site. The
// catalog never reads them back.
type MenuPublisher struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMenuPublisher(db *mongo.Database) *MenuPublisher {
	return &MenuPublisher{
		collection: db.Collection(PublishedMenusCollection),
		now:        time.Now,
	}
}

// NewPublishedMenu assembles the snapshot document for menu.
func NewPublishedMenu(menu models.PopulatedMenu, template *models.Template, customization models.TemplateCustomization, at time.Time) models.PublishedMenu {
	return models.PublishedMenu{
		MenuID:        menu.ID,
		Menu:          menu,
		Template:      template,
		Customization: customization,
		PublishedAt:   at.UTC(),
	}
}

// Publish replaces any earlier snapshot of the same menu.
func (p *MenuPublisher) Publish(ctx context.Context, menu models.PopulatedMenu, template *models.Template, customization models.TemplateCustomization) (models.PublishedMenu, error) {
	doc := NewPublishedMenu(menu, template, customization, p.now())

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var stored models.PublishedMenu
	err := p.collection.FindOneAndReplace(
		ctx,
		bson.M{"menuId": menu.ID},
		doc,
		options.FindOneAndReplace().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return models.PublishedMenu{}, fmt.Errorf("publish menu %s: %w", menu.ID, err)
	}
	return stored, nil
}

func (p *MenuPublisher) Published(ctx context.Context, menuID string) (models.PublishedMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.PublishedMenu
	err := p.collection.FindOne(ctx, bson.M{"menuId": menuID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.PublishedMenu{}, ErrNotPublished
	}
	if err != nil {
		return models.PublishedMenu{}, err
	}
	return doc, nil
}

// Unpublish removes the snapshot of menuID and reports whether one existed.
func (p *MenuPublisher) Unpublish(ctx context.Context, menuID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := p.collection.DeleteOne(ctx, bson.M{"menuId": menuID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
