package catalog

import "digitalmenu/internal/models"

func (s *Store) Templates() []models.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Template{}, s.templates...)
}

func (s *Store) SetActiveTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTemplateID = id
}

func (s *Store) ActiveTemplateID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTemplateID
}

// ActiveTemplate reports false when no template is selected or the selected
// id is not one of the known templates.
func (s *Store) ActiveTemplate() (models.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeTemplateID == "" {
		return models.Template{}, false
	}
	for _, t := range s.templates {
		if t.ID == s.activeTemplateID {
			return t, true
		}
	}
	return models.Template{}, false
}

func (s *Store) TemplateCustomization() models.TemplateCustomization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customization.Clone()
}

// UpdateTemplateCustomization merges patch into the single customization
// record and returns the result.
func (s *Store) UpdateTemplateCustomization(patch models.CustomizationPatch) models.TemplateCustomization {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.customization)
	return s.customization.Clone()
}
