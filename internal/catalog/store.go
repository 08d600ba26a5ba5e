// Package catalog holds the in-memory menu catalog: the shared item and
// category pools, the menus that arrange them, and the console state that
// goes with them.
package catalog

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"digitalmenu/internal/models"
)

// Store is safe for concurrent use. Every accessor returns copies, so callers
// only observe changes by reading again.
type Store struct {
	mu sync.RWMutex

	seed Seed

	items      []models.Item
	categories []models.Category
	menus      []models.Menu
	templates  []models.Template
	complaints []models.Complaint

	activeMenuID     string
	activeTemplateID string
	customization    models.TemplateCustomization

	authenticated bool
	preferences   models.Preferences

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New returns a store populated from the embedded seed catalog.
func New(opts ...Option) (*Store, error) {
	seed, err := DefaultSeed()
	if err != nil {
		return nil, err
	}
	return NewWithSeed(seed, opts...), nil
}

// NewWithSeed returns a store that starts from, and resets to, seed.
func NewWithSeed(seed Seed, opts ...Option) *Store {
	s := &Store{
		seed:        seed.Clone(),
		preferences: models.DefaultPreferences(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset must be called with mu held for writing, or before s is shared.
func (s *Store) reset() {
	fresh := s.seed.Clone()
	s.items = fresh.Items
	s.categories = fresh.Categories
	s.menus = fresh.Menus
	s.templates = fresh.Templates
	s.complaints = fresh.Complaints
	s.activeMenuID = ""
	s.activeTemplateID = ""
	s.customization = models.DefaultCustomization()
}

// Login records an authenticated session. Credentials are not checked.
func (s *Store) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
}

// Logout ends the session and restores every collection, the active
// selections and the template customization to their seeded state.
// Preferences are kept.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.reset()
	log.Printf("[catalog] reset to seed: %d items, %d categories, %d menus, %d complaints",
		len(s.items), len(s.categories), len(s.menus), len(s.complaints))
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Store) Preferences() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preferences
}

func (s *Store) SetTheme(theme models.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences.Theme = theme
}

func (s *Store) ToggleTheme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences.Theme = s.preferences.ToggledTheme()
	return s.preferences.Theme
}

func (s *Store) SetLanguage(locale models.Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences.Language = locale
}

func (s *Store) ToggleLanguage() models.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences.Language = s.preferences.ToggledLanguage()
	return s.preferences.Language
}

func (s *Store) assignID(id string) string {
	if id != "" {
		return id
	}
	return s.newID()
}
