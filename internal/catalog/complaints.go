package catalog

import "digitalmenu/internal/models"

func (s *Store) Complaints() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Complaint{}, s.complaints...)
}

func (s *Store) Complaint(id string) (models.Complaint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.complaintIndex(id)
	if i < 0 {
		return models.Complaint{}, false
	}
	return s.complaints[i], true
}

// AddComplaint appends complaint, filling in an id, the pending status and
// the current time when they are not set.
func (s *Store) AddComplaint(complaint models.Complaint) (models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	complaint.ID = s.assignID(complaint.ID)
	if complaint.Status == "" {
		complaint.Status = models.ComplaintPending
	}
	if complaint.Date.IsZero() {
		complaint.Date = s.now().UTC()
	}
	if s.complaintIndex(complaint.ID) >= 0 {
		return models.Complaint{}, duplicateID("complaint", complaint.ID)
	}
	s.complaints = append(s.complaints, complaint)
	return complaint, nil
}

func (s *Store) UpdateComplaint(id string, patch models.ComplaintPatch) (models.Complaint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.complaintIndex(id)
	if i < 0 {
		return models.Complaint{}, false
	}
	patch.Apply(&s.complaints[i])
	return s.complaints[i], true
}

func (s *Store) DeleteComplaint(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.complaintIndex(id)
	if i < 0 {
		return false
	}
	s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
	return true
}

func (s *Store) complaintIndex(id string) int {
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			return i
		}
	}
	return -1
}
