package repository

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	vo "campusguard/internal/domain/complaint/valueobjects"
	"campusguard/internal/infrastructure/persistence/models"
	apperrors "campusguard/internal/shared/errors"
)

// LookupCache resolves operator-configured status and severity rows.
// Rows are loaded once at startup; absence of a status the engine needs is
// a fatal configuration error, not a client error. Reload exists for tests
// and operator tooling.
type LookupCache struct {
	db *gorm.DB

	mu             sync.RWMutex
	statusByName   map[string]uint
	statusByID     map[uint]string
	severityByName map[string]uint
	severityByID   map[uint]string
}

func NewLookupCache(database *gorm.DB) *LookupCache {
	return &LookupCache{db: database}
}

// Load reads the status and severity tables into memory.
func (c *LookupCache) Load() error {
	var statuses []models.ComplaintStatusModel
	if err := c.db.Find(&statuses).Error; err != nil {
		return fmt.Errorf("failed to load complaint statuses: %w", err)
	}

	var severities []models.SeverityLevelModel
	if err := c.db.Find(&severities).Error; err != nil {
		return fmt.Errorf("failed to load severity levels: %w", err)
	}

	statusByName := make(map[string]uint, len(statuses))
	statusByID := make(map[uint]string, len(statuses))
	for _, s := range statuses {
		statusByName[s.Name] = s.ID
		statusByID[s.ID] = s.Name
	}

	severityByName := make(map[string]uint, len(severities))
	severityByID := make(map[uint]string, len(severities))
	for _, s := range severities {
		severityByName[s.Name] = s.ID
		severityByID[s.ID] = s.Name
	}

	c.mu.Lock()
	c.statusByName = statusByName
	c.statusByID = statusByID
	c.severityByName = severityByName
	c.severityByID = severityByID
	c.mu.Unlock()

	return nil
}

func (c *LookupCache) StatusID(status vo.Status) (uint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.statusByName[status.String()]
	if !ok {
		return 0, apperrors.NewConfigurationError(
			"status not configured",
			fmt.Sprintf("no %s row in complaint_statuses", status),
		)
	}
	return id, nil
}

func (c *LookupCache) StatusName(id uint) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name, ok := c.statusByID[id]
	return name, ok
}

func (c *LookupCache) SeverityID(name string) (uint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.severityByName[name]
	return id, ok
}

func (c *LookupCache) SeverityName(id uint) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name, ok := c.severityByID[id]
	return name, ok
}
