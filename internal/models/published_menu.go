package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublishedMenu is the snapshot written to the published_menus collection
// when an admin publishes a menu for the public site.
type PublishedMenu struct {
	ID            primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	MenuID        string                `bson:"menuId" json:"menuId"`
	Menu          PopulatedMenu         `bson:"menu" json:"menu"`
	Template      *Template             `bson:"template,omitempty" json:"template,omitempty"`
	Customization TemplateCustomization `bson:"customization" json:"customization"`
	PublishedAt   time.Time             `bson:"publishedAt" json:"publishedAt"`
}
