package models

// SizeVariant is an alternative portion of an item; Price replaces the base
// price rather than adding to it.
type SizeVariant struct {
	Label LocalizedText `bson:"label" json:"label" yaml:"label"`
	Price Money         `bson:"price" json:"price" yaml:"price"`
}

// AddOn is an optional extra charged on top of the item price. A zero price
// means the add-on is free.
type AddOn struct {
	Label LocalizedText `bson:"label" json:"label" yaml:"label"`
	Price Money         `bson:"price" json:"price" yaml:"price"`
}

func (a AddOn) Free() bool {
	return a.Price.IsZero()
}

// Item is an entry of the shared item pool. Menus reference items by ID only.
type Item struct {
	ID              string          `bson:"id" json:"id" yaml:"id"`
	Name            LocalizedText   `bson:"name" json:"name" yaml:"name"`
	Description     LocalizedText   `bson:"description" json:"description" yaml:"description"`
	Price           Money           `bson:"price" json:"price" yaml:"price"`
	Image           string          `bson:"image,omitempty" json:"image,omitempty" yaml:"image"`
	Calories        *int            `bson:"calories,omitempty" json:"calories,omitempty" yaml:"calories"`
	PrepTimeMinutes *int            `bson:"prepTimeMinutes,omitempty" json:"prepTimeMinutes,omitempty" yaml:"prepTimeMinutes"`
	SpiceLevel      *int            `bson:"spiceLevel,omitempty" json:"spiceLevel,omitempty" yaml:"spiceLevel"`
	DietaryTags     DietaryTags     `bson:"dietaryTags,omitempty" json:"dietaryTags,omitempty" yaml:"dietaryTags"`
	Ingredients     []LocalizedText `bson:"ingredients,omitempty" json:"ingredients,omitempty" yaml:"ingredients"`
	Allergens       []LocalizedText `bson:"allergens,omitempty" json:"allergens,omitempty" yaml:"allergens"`
	Sizes           []SizeVariant   `bson:"sizes,omitempty" json:"sizes,omitempty" yaml:"sizes"`
	AddOns          []AddOn         `bson:"addOns,omitempty" json:"addOns,omitempty" yaml:"addOns"`
}

// Clone returns a copy that shares no slices or pointers with i.
func (i Item) Clone() Item {
	out := i
	out.Calories = cloneInt(i.Calories)
	out.PrepTimeMinutes = cloneInt(i.PrepTimeMinutes)
	out.SpiceLevel = cloneInt(i.SpiceLevel)
	out.DietaryTags = i.DietaryTags.clone()
	out.Ingredients = cloneTexts(i.Ingredients)
	out.Allergens = cloneTexts(i.Allergens)
	if i.Sizes != nil {
		out.Sizes = append([]SizeVariant(nil), i.Sizes...)
	}
	if i.AddOns != nil {
		out.AddOns = append([]AddOn(nil), i.AddOns...)
	}
	return out
}

// ItemPatch lists the fields an update may change. Nil fields are left alone;
// slice fields replace the whole list. The Clear flags remove an optional
// attribute and win over a value set in the same patch.
type ItemPatch struct {
	Name            *LocalizedText
	Description     *LocalizedText
	Price           *Money
	Image           *string
	Calories        *int
	PrepTimeMinutes *int
	SpiceLevel      *int
	DietaryTags     *DietaryTags
	Ingredients     *[]LocalizedText
	Allergens       *[]LocalizedText
	Sizes           *[]SizeVariant
	AddOns          *[]AddOn

	ClearCalories        bool
	ClearPrepTimeMinutes bool
	ClearSpiceLevel      bool
}

func (p ItemPatch) Empty() bool {
	return p == ItemPatch{}
}

func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Calories != nil {
		item.Calories = cloneInt(p.Calories)
	}
	if p.PrepTimeMinutes != nil {
		item.PrepTimeMinutes = cloneInt(p.PrepTimeMinutes)
	}
	if p.SpiceLevel != nil {
		item.SpiceLevel = cloneInt(p.SpiceLevel)
	}
	if p.DietaryTags != nil {
		item.DietaryTags = p.DietaryTags.clone()
	}
	if p.Ingredients != nil {
		item.Ingredients = cloneTexts(*p.Ingredients)
	}
	if p.Allergens != nil {
		item.Allergens = cloneTexts(*p.Allergens)
	}
	if p.Sizes != nil {
		item.Sizes = append([]SizeVariant{}, (*p.Sizes)...)
	}
	if p.AddOns != nil {
		item.AddOns = append([]AddOn{}, (*p.AddOns)...)
	}
	if p.ClearCalories {
		item.Calories = nil
	}
	if p.ClearPrepTimeMinutes {
		item.PrepTimeMinutes = nil
	}
	if p.ClearSpiceLevel {
		item.SpiceLevel = nil
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
