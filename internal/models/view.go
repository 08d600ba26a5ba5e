package models

// The view types below are what template renderers consume: every bilingual
// pair has been collapsed to one locale.

type OptionView struct {
	Label string `json:"label"`
	Price Money  `json:"price"`
	Free  bool   `json:"free,omitempty"`
}

type ItemView struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           Money        `json:"price"`
	Image           string       `json:"image,omitempty"`
	Calories        *int         `json:"calories,omitempty"`
	PrepTimeMinutes *int         `json:"prepTimeMinutes,omitempty"`
	SpiceLevel      *int         `json:"spiceLevel,omitempty"`
	DietaryTags     DietaryTags  `json:"dietaryTags,omitempty"`
	Ingredients     []string     `json:"ingredients,omitempty"`
	Allergens       []string     `json:"allergens,omitempty"`
	Sizes           []OptionView `json:"sizes,omitempty"`
	AddOns          []OptionView `json:"addOns,omitempty"`
}

type CategoryView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Items       []ItemView `json:"items"`
}

type MenuView struct {
	ID          string         `json:"id"`
	Locale      Locale         `json:"locale"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Categories  []CategoryView `json:"categories"`
}

func (p PopulatedMenu) Localize(locale Locale) MenuView {
	view := MenuView{
		ID:          p.ID,
		Locale:      locale,
		Name:        p.Name.Text(locale),
		Description: optionalTextIn(p.Description, locale),
		Categories:  make([]CategoryView, 0, len(p.Categories)),
	}
	for _, c := range p.Categories {
		cv := CategoryView{
			ID:          c.ID,
			Name:        c.Name.Text(locale),
			Description: optionalTextIn(c.Description, locale),
			Items:       make([]ItemView, 0, len(c.Items)),
		}
		for _, item := range c.Items {
			cv.Items = append(cv.Items, item.Localize(locale))
		}
		view.Categories = append(view.Categories, cv)
	}
	return view
}

func (i Item) Localize(locale Locale) ItemView {
	view := ItemView{
		ID:              i.ID,
		Name:            i.Name.Text(locale),
		Description:     i.Description.Text(locale),
		Price:           i.Price,
		Image:           i.Image,
		Calories:        cloneInt(i.Calories),
		PrepTimeMinutes: cloneInt(i.PrepTimeMinutes),
		SpiceLevel:      cloneInt(i.SpiceLevel),
		DietaryTags:     i.DietaryTags.clone(),
		Ingredients:     textsIn(i.Ingredients, locale),
		Allergens:       textsIn(i.Allergens, locale),
	}
	for _, s := range i.Sizes {
		view.Sizes = append(view.Sizes, OptionView{Label: s.Label.Text(locale), Price: s.Price})
	}
	for _, a := range i.AddOns {
		view.AddOns = append(view.AddOns, OptionView{Label: a.Label.Text(locale), Price: a.Price, Free: a.Free()})
	}
	return view
}

func optionalTextIn(value *LocalizedText, locale Locale) string {
	if value == nil {
		return ""
	}
	return value.Text(locale)
}

func textsIn(values []LocalizedText, locale Locale) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Text(locale)
	}
	return out
}
