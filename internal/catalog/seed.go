package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"digitalmenu/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the full initial content of a Store.
type Seed struct {
	Items      []models.Item      `yaml:"items"`
	Categories []models.Category  `yaml:"categories"`
	Menus      []models.Menu      `yaml:"menus"`
	Templates  []models.Template  `yaml:"templates"`
	Complaints []models.Complaint `yaml:"complaints"`
}

// DefaultSeed parses the embedded seed catalog.
func DefaultSeed() (Seed, error) {
	return ParseSeed(seedYAML)
}

func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// Validate checks id uniqueness, closed enumerations and that every menu
// association resolves, so a fresh store never starts out broken.
func (s Seed) Validate() error {
	items := map[string]struct{}{}
	for _, item := range s.Items {
		if err := addKey(items, "item", item.ID); err != nil {
			return err
		}
		for _, tag := range item.DietaryTags {
			if !tag.Valid() {
				return fmt.Errorf("seed item %q: unknown dietary tag %q", item.ID, tag)
			}
		}
		if item.SpiceLevel != nil && (*item.SpiceLevel < 1 || *item.SpiceLevel > 5) {
			return fmt.Errorf("seed item %q: spice level %d out of range", item.ID, *item.SpiceLevel)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("seed item %q: negative price", item.ID)
		}
	}

	categories := map[string]struct{}{}
	for _, c := range s.Categories {
		if err := addKey(categories, "category", c.ID); err != nil {
			return err
		}
	}

	menus := map[string]struct{}{}
	for _, m := range s.Menus {
		if err := addKey(menus, "menu", m.ID); err != nil {
			return err
		}
		for _, assoc := range m.Categories {
			if _, ok := categories[assoc.CategoryID]; !ok {
				return fmt.Errorf("seed menu %q: unknown category %q", m.ID, assoc.CategoryID)
			}
			for _, id := range assoc.ItemIDs {
				if _, ok := items[id]; !ok {
					return fmt.Errorf("seed menu %q: unknown item %q", m.ID, id)
				}
			}
		}
	}

	templates := map[string]struct{}{}
	for _, t := range s.Templates {
		if err := addKey(templates, "template", t.ID); err != nil {
			return err
		}
	}

	complaints := map[string]struct{}{}
	for _, c := range s.Complaints {
		if err := addKey(complaints, "complaint", c.ID); err != nil {
			return err
		}
		if !c.Status.Valid() {
			return fmt.Errorf("seed complaint %q: unknown status %q", c.ID, c.Status)
		}
	}
	return nil
}

func addKey(seen map[string]struct{}, kind, id string) error {
	if id == "" {
		return fmt.Errorf("seed %s without id", kind)
	}
	if _, ok := seen[id]; ok {
		return duplicateID("seed "+kind, id)
	}
	seen[id] = struct{}{}
	return nil
}

// Clone deep copies the seed so a store can mutate its collections freely.
func (s Seed) Clone() Seed {
	out := Seed{
		Items:      make([]models.Item, len(s.Items)),
		Categories: make([]models.Category, len(s.Categories)),
		Menus:      make([]models.Menu, len(s.Menus)),
		Templates:  append([]models.Template{}, s.Templates...),
		Complaints: append([]models.Complaint{}, s.Complaints...),
	}
	for i, item := range s.Items {
		out.Items[i] = item.Clone()
	}
	for i, c := range s.Categories {
		out.Categories[i] = c.Clone()
	}
	for i, m := range s.Menus {
		out.Menus[i] = m.Clone()
	}
	return out
}
