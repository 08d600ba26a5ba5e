package catalog

import "digitalmenu/internal/models"

func (s *Store) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Item, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

func (s *Store) Item(id string) (models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.itemIndex(id)
	if i < 0 {
		return models.Item{}, false
	}
	return s.items[i].Clone(), true
}

// AddItem appends item to the pool. An empty ID is replaced with a generated
// one; an ID already in the pool is rejected with ErrDuplicateID.
func (s *Store) AddItem(item models.Item) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item = item.Clone()
	item.ID = s.assignID(item.ID)
	if s.itemIndex(item.ID) >= 0 {
		return models.Item{}, duplicateID("item", item.ID)
	}
	s.items = append(s.items, item)
	return item.Clone(), nil
}

// UpdateItem applies patch to the item with id. A missing id is a no-op and
// reports false.
func (s *Store) UpdateItem(id string, patch models.ItemPatch) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return models.Item{}, false
	}
	patch.Apply(&s.items[i])
	return s.items[i].Clone(), true
}

// DeleteItem removes the item from the pool only. Menus keep the id and skip
// it when populated.
func (s *Store) DeleteItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

func (s *Store) itemIndex(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
