package services

import (
	"studydesk/internal/catalog"
	"studydesk/internal/events"
	"studydesk/internal/logger"
	"studydesk/internal/repositories"
)

// Services aggregates the domain services built over one preference store.
type Services struct {
	Preferences PreferenceService
	Session     *SessionService
}

// NewServices constructs the service container over store.
func NewServices(store repositories.PreferenceRepository, cat *catalog.Catalog, emit events.Emitter, log *logger.Logger) *Services {
	prefs := NewPreferenceService(store, cat, log)
	return &Services{
		Preferences: prefs,
		Session:     NewSessionService(prefs, cat, emit, log),
	}
}
