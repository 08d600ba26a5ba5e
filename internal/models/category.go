package models

// Category is pure metadata. Which items it groups, and in which order, is
// recorded only by the menus that reference it.
type Category struct {
	ID          string         `bson:"id" json:"id" yaml:"id"`
	Name        LocalizedText  `bson:"name" json:"name" yaml:"name"`
	Description *LocalizedText `bson:"description,omitempty" json:"description,omitempty" yaml:"description"`
}

func (c Category) Clone() Category {
	out := c
	out.Description = cloneTextPtr(c.Description)
	return out
}

// CategoryPatch changes the supplied fields only. A Description pointing at an
// empty LocalizedText removes the description.
type CategoryPatch struct {
	Name        *LocalizedText
	Description *LocalizedText
}

func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Description == nil
}

func (p CategoryPatch) Apply(category *Category) {
	if p.Name != nil {
		category.Name = *p.Name
	}
	if p.Description != nil {
		category.Description = optionalText(*p.Description)
	}
}

func optionalText(value LocalizedText) *LocalizedText {
	if value.IsZero() {
		return nil
	}
	return &value
}
