package services

import (
	"utsav/internal/config"
	"utsav/internal/models/response_models"
	"utsav/internal/models/session_models"
)

// CatalogServiceInterface is the static lookup from event type to the
// ordered vendor-category checklist seeded at the start of a conversation.
type CatalogServiceInterface interface {
	ListEventTypes() []response_models.EventTypeOption
	IsKnownEventType(eventTypeID string) bool
	EventTypeName(eventTypeID string) string
	ChecklistFor(eventTypeID string) []session_models.ChecklistItem
}

type CatalogService struct {
	cfg *config.PlannerConfig
}

func NewCatalogService(cfg *config.PlannerConfig) CatalogServiceInterface {
	return &CatalogService{cfg: cfg}
}

func (s *CatalogService) ListEventTypes() []response_models.EventTypeOption {
	out := make([]response_models.EventTypeOption, 0, len(s.cfg.EventTypes))
	for _, et := range s.cfg.EventTypes {
		out = append(out, response_models.EventTypeOption{
			ID:    et.ID,
			Name:  et.Name,
			Emoji: et.Emoji,
		})
	}
	return out
}

func (s *CatalogService) IsKnownEventType(eventTypeID string) bool {
	for _, et := range s.cfg.EventTypes {
		if et.ID == eventTypeID {
			return true
		}
	}
	return false
}

func (s *CatalogService) EventTypeName(eventTypeID string) string {
	for _, et := range s.cfg.EventTypes {
		if et.ID == eventTypeID {
			return et.Name
		}
	}
	return eventTypeID
}

// ChecklistFor seeds a fresh checklist. Unknown event types get the generic
// default list, which is never empty. The returned slice is a copy; user
// toggles thereafter belong to the session, not the catalog.
func (s *CatalogService) ChecklistFor(eventTypeID string) []session_models.ChecklistItem {
	entries, ok := s.cfg.Catalogs[eventTypeID]
	if !ok || len(entries) == 0 {
		entries = s.cfg.DefaultCatalog
	}
	out := make([]session_models.ChecklistItem, 0, len(entries))
	for _, entry := range entries {
		out = append(out, session_models.ChecklistItem{
			Category: entry.Category,
			Selected: entry.DefaultSelected,
		})
	}
	return out
}
