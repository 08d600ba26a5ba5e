package catalog

import "digitalmenu/internal/models"

func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = c.Clone()
	}
	return out
}

func (s *Store) Category(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return models.Category{}, false
	}
	return s.categories[i].Clone(), true
}

func (s *Store) AddCategory(category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category = category.Clone()
	category.ID = s.assignID(category.ID)
	if s.categoryIndex(category.ID) >= 0 {
		return models.Category{}, duplicateID("category", category.ID)
	}
	s.categories = append(s.categories, category)
	return category.Clone(), nil
}

func (s *Store) UpdateCategory(id string, patch models.CategoryPatch) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return models.Category{}, false
	}
	patch.Apply(&s.categories[i])
	return s.categories[i].Clone(), true
}

// DeleteCategory removes the category from the pool. Menus that still name it
// fail to populate until their associations are replaced.
func (s *Store) DeleteCategory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return false
	}
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	return true
}

// MenusReferencingCategory lists, in menu order, the ids of menus with an
// association for categoryID.
func (s *Store) MenusReferencingCategory(categoryID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, m := range s.menus {
		for _, assoc := range m.Categories {
			if assoc.CategoryID == categoryID {
				ids = append(ids, m.ID)
				break
			}
		}
	}
	return ids
}

func (s *Store) categoryIndex(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}
