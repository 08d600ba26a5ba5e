package catalog

import "digitalmenu/internal/models"

func (s *Store) Menus() []models.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Menu, len(s.menus))
	for i, m := range s.menus {
		out[i] = m.Clone()
	}
	return out
}

func (s *Store) Menu(id string) (models.Menu, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.menuIndex(id)
	if i < 0 {
		return models.Menu{}, false
	}
	return s.menus[i].Clone(), true
}

// AddMenu appends menu. Its associations are stored as given; ids they name
// are not checked against the pools.
func (s *Store) AddMenu(menu models.Menu) (models.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	menu = menu.Clone()
	menu.ID = s.assignID(menu.ID)
	if menu.Categories == nil {
		menu.Categories = []models.CategoryAssociation{}
	}
	if s.menuIndex(menu.ID) >= 0 {
		return models.Menu{}, duplicateID("menu", menu.ID)
	}
	s.menus = append(s.menus, menu)
	return menu.Clone(), nil
}

func (s *Store) UpdateMenu(id string, patch models.MenuPatch) (models.Menu, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.menuIndex(id)
	if i < 0 {
		return models.Menu{}, false
	}
	patch.Apply(&s.menus[i])
	return s.menus[i].Clone(), true
}

// DeleteMenu removes the menu. An active menu selection pointing at it is left
// as is and reads as "nothing selected".
func (s *Store) DeleteMenu(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.menuIndex(id)
	if i < 0 {
		return false
	}
	s.menus = append(s.menus[:i], s.menus[i+1:]...)
	return true
}

// MenuWithData resolves the menu with id into its populated form.
//
// ok is false when no such menu exists. Categories are resolved in
// association order and a missing one fails the whole call with a
// *StructuralIntegrityError. Item ids that no longer resolve are dropped and
// the remaining items keep their order. The call never mutates the store.
func (s *Store) MenuWithData(id string) (menu models.PopulatedMenu, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.menuIndex(id)
	if i < 0 {
		return models.PopulatedMenu{}, false, nil
	}
	populated, err := s.populate(s.menus[i])
	if err != nil {
		return models.PopulatedMenu{}, true, err
	}
	return populated, true, nil
}

func (s *Store) populate(menu models.Menu) (models.PopulatedMenu, error) {
	out := models.PopulatedMenu{
		ID:         menu.ID,
		Name:       menu.Name,
		Categories: make([]models.PopulatedCategory, 0, len(menu.Categories)),
	}
	if menu.Description != nil {
		description := *menu.Description
		out.Description = &description
	}

	for _, assoc := range menu.Categories {
		ci := s.categoryIndex(assoc.CategoryID)
		if ci < 0 {
			return models.PopulatedMenu{}, &StructuralIntegrityError{MenuID: menu.ID, CategoryID: assoc.CategoryID}
		}

		entry := models.PopulatedCategory{
			Category: s.categories[ci].Clone(),
			Items:    make([]models.Item, 0, len(assoc.ItemIDs)),
		}
		for _, itemID := range assoc.ItemIDs {
			ii := s.itemIndex(itemID)
			if ii < 0 {
				continue
			}
			entry.Items = append(entry.Items, s.items[ii].Clone())
		}
		out.Categories = append(out.Categories, entry)
	}
	return out, nil
}

func (s *Store) SetActiveMenu(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeMenuID = id
}

func (s *Store) ActiveMenuID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeMenuID
}

// ActiveMenu returns the selected menu. An unset or stale selection reports
// false rather than an error.
func (s *Store) ActiveMenu() (models.Menu, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeMenuID == "" {
		return models.Menu{}, false
	}
	i := s.menuIndex(s.activeMenuID)
	if i < 0 {
		return models.Menu{}, false
	}
	return s.menus[i].Clone(), true
}

// ActiveMenuWithData populates the selected menu. A stale selection reads as
// nothing selected; a broken category reference still fails.
func (s *Store) ActiveMenuWithData() (models.PopulatedMenu, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeMenuID == "" {
		return models.PopulatedMenu{}, false, nil
	}
	i := s.menuIndex(s.activeMenuID)
	if i < 0 {
		return models.PopulatedMenu{}, false, nil
	}
	populated, err := s.populate(s.menus[i])
	if err != nil {
		return models.PopulatedMenu{}, true, err
	}
	return populated, true, nil
}

func (s *Store) menuIndex(id string) int {
	for i := range s.menus {
		if s.menus[i].ID == id {
			return i
		}
	}
	return -1
}
