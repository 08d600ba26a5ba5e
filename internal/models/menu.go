package models

// CategoryAssociation places a category inside a menu together with the
// ordered ids of the items shown under it.
type CategoryAssociation struct {
	CategoryID string   `bson:"categoryId" json:"categoryId" yaml:"categoryId"`
	ItemIDs    []string `bson:"itemIds" json:"itemIds" yaml:"itemIds"`
}

// Menu owns no item or category data; it only records which pool entries it
// shows and in what order.
type Menu struct {
	ID          string                `bson:"id" json:"id" yaml:"id"`
	Name        LocalizedText         `bson:"name" json:"name" yaml:"name"`
	Description *LocalizedText        `bson:"description,omitempty" json:"description,omitempty" yaml:"description"`
	Categories  []CategoryAssociation `bson:"categories" json:"categories" yaml:"categories"`
}

func (m Menu) Clone() Menu {
	out := m
	out.Description = cloneTextPtr(m.Description)
	out.Categories = cloneAssociations(m.Categories)
	return out
}

// ReferencesItem reports whether any association of m lists itemID.
func (m Menu) ReferencesItem(itemID string) bool {
	for _, assoc := range m.Categories {
		for _, id := range assoc.ItemIDs {
			if id == itemID {
				return true
			}
		}
	}
	return false
}

// MenuPatch merges the menu header. Categories, when set, replaces the whole
// association sequence; associations are never merged piecewise.
type MenuPatch struct {
	Name        *LocalizedText
	Description *LocalizedText
	Categories  *[]CategoryAssociation
}

func (p MenuPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Categories == nil
}

func (p MenuPatch) Apply(menu *Menu) {
	if p.Name != nil {
		menu.Name = *p.Name
	}
	if p.Description != nil {
		menu.Description = optionalText(*p.Description)
	}
	if p.Categories != nil {
		menu.Categories = cloneAssociations(*p.Categories)
		if menu.Categories == nil {
			menu.Categories = []CategoryAssociation{}
		}
	}
}

func cloneAssociations(values []CategoryAssociation) []CategoryAssociation {
	if values == nil {
		return nil
	}
	out := make([]CategoryAssociation, len(values))
	for i, assoc := range values {
		out[i] = CategoryAssociation{
			CategoryID: assoc.CategoryID,
			ItemIDs:    append([]string{}, assoc.ItemIDs...),
		}
	}
	return out
}

// PopulatedCategory is a resolved category with its resolved items in menu
// order.
type PopulatedCategory struct {
	Category `bson:",inline" yaml:",inline"`
	Items    []Item `bson:"items" json:"items" yaml:"items"`
}

// PopulatedMenu is the denormalized, read-only form of a Menu. It is computed
// on demand and never stored in the catalog.
type PopulatedMenu struct {
	ID          string              `bson:"id" json:"id"`
	Name        LocalizedText       `bson:"name" json:"name"`
	Description *LocalizedText      `bson:"description,omitempty" json:"description,omitempty"`
	Categories  []PopulatedCategory `bson:"categories" json:"categories"`
}

// ItemCount is the number of resolved items across all categories.
func (p PopulatedMenu) ItemCount() int {
	n := 0
	for _, c := range p.Categories {
		n += len(c.Items)
	}
	return n
}
