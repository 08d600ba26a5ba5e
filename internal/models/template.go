package models

// Template is one of the fixed public menu layouts.
type Template struct {
	ID          string `bson:"id" json:"id" yaml:"id"`
	Name        string `bson:"name" json:"name" yaml:"name"`
	Thumbnail   string `bson:"thumbnail" json:"thumbnail" yaml:"thumbnail"`
	Description string `bson:"description" json:"description" yaml:"description"`
}

const (
	DefaultPrimaryColor   = "#3b82f6"
	DefaultSecondaryColor = "#8b5cf6"
)

// TemplateCustomization applies to whichever template is active.
type TemplateCustomization struct {
	Logo           *string `bson:"logo,omitempty" json:"logo" yaml:"logo"`
	PrimaryColor   string  `bson:"primaryColor" json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor string  `bson:"secondaryColor" json:"secondaryColor" yaml:"secondaryColor"`
}

func DefaultCustomization() TemplateCustomization {
	return TemplateCustomization{
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
	}
}

func (t TemplateCustomization) Clone() TemplateCustomization {
	out := t
	if t.Logo != nil {
		logo := *t.Logo
		out.Logo = &logo
	}
	return out
}

// CustomizationPatch merges into the customization record. An empty Logo
// string removes the logo.
type CustomizationPatch struct {
	Logo           *string
	PrimaryColor   *string
	SecondaryColor *string
}

func (p CustomizationPatch) Apply(c *TemplateCustomization) {
	if p.Logo != nil {
		if *p.Logo == "" {
			c.Logo = nil
		} else {
			logo := *p.Logo
			c.Logo = &logo
		}
	}
	if p.PrimaryColor != nil {
		c.PrimaryColor = *p.PrimaryColor
	}
	if p.SecondaryColor != nil {
		c.SecondaryColor = *p.SecondaryColor
	}
}
