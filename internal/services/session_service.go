package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"studydesk/internal/assistant"
	"studydesk/internal/catalog"
	"studydesk/internal/events"
	"studydesk/internal/logger"
	"studydesk/internal/models"
)

const (
	NoticeSaved         = "Settings saved successfully!"
	NoticeSaveFailed    = "Failed to save settings"
	NoticeImported      = "Settings imported successfully!"
	NoticeImportInvalid = "Invalid configuration file"
)

// SessionService owns the application state for the single active session.
type SessionService struct {
	prefs   PreferenceService
	catalog *catalog.Catalog
	emit    events.Emitter
	log     *logger.Logger

	mu    sync.Mutex
	ctx   context.Context
	state models.AppState
}

func NewSessionService(prefs PreferenceService, cat *catalog.Catalog, emit events.Emitter, log *logger.Logger) *SessionService {
	if emit == nil {
		emit = events.Nop
	}
	if log == nil {
		log = logger.NewNop()
	}
	snap := models.NewSnapshot()
	return &SessionService{
		prefs:   prefs,
		catalog: cat,
		emit:    emit,
		log:     log.With("service", "session"),
		ctx:     context.Background(),
		state:   stateFromSnapshot(snap),
	}
}

func stateFromSnapshot(snap models.Snapshot) models.AppState {
	return models.AppState{
		Mode:           snap.Settings.DefaultMode,
		SelectedBranch: snap.Settings.DefaultBranch,
		ExpandedTopics: map[string]bool{},
		Settings:       snap.Settings,
		Favorites:      snap.Favorites,
		ChatMessages:   snap.ChatMessages,
	}
}

// Startup loads persisted preferences and applies the default mode and branch.
func (s *SessionService) Startup(ctx context.Context) {
	snap := s.prefs.Load(ctx)

	s.mu.Lock()
	s.ctx = ctx
	s.state = stateFromSnapshot(snap)
	s.mu.Unlock()

	s.log.Info("session started", "mode", snap.Settings.DefaultMode, "branch", snap.Settings.DefaultBranch)
}

// State returns a deep copy of the current state.
func (s *SessionService) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

func (s *SessionService) copyStateLocked() models.AppState {
	snap := s.snapshotLocked()
	out := s.state
	out.Settings = snap.Settings
	out.Favorites = snap.Favorites
	out.ChatMessages = snap.ChatMessages
	out.ExpandedTopics = make(map[string]bool, len(s.state.ExpandedTopics))
	for k, v := range s.state.ExpandedTopics {
		out.ExpandedTopics[k] = v
	}
	return out
}

func (s *SessionService) snapshotLocked() models.Snapshot {
	return models.Snapshot{
		Settings:     s.state.Settings,
		Favorites:    s.state.Favorites,
		ChatMessages: s.state.ChatMessages,
	}.Clone()
}

func (s *SessionService) ListBranches() []models.Branch {
	return s.catalog.ListBranches()
}

func (s *SessionService) ListModes() []models.Mode {
	return s.catalog.ListModes()
}

func (s *SessionService) SearchTopics(query string) []models.SearchHit {
	return s.catalog.Search(query)
}

func (s *SessionService) SetMode(key string) error {
	if !s.catalog.HasMode(key) {
		return fmt.Errorf("service: set mode %q: %w", key, catalog.ErrModeNotFound)
	}
	s.mu.Lock()
	s.state.Mode = key
	s.mu.Unlock()
	return nil
}

// SelectBranch switches branch and clears the selected subject.
func (s *SessionService) SelectBranch(key string) error {
	if !s.catalog.HasBranch(key) {
		return fmt.Errorf("service: select branch %q: %w", key, catalog.ErrBranchNotFound)
	}
	s.mu.Lock()
	s.state.SelectedBranch = key
	s.state.SelectedSubject = ""
	s.mu.Unlock()
	return nil
}

func (s *SessionService) SelectSubject(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.catalog.Subject(s.state.SelectedBranch, key); err != nil {
		return fmt.Errorf("service: select subject: %w", err)
	}
	s.state.SelectedSubject = key
	return nil
}

// ToggleTopic flips the expanded flag of a topic and returns the new value.
func (s *SessionService) ToggleTopic(subjectKey string, index int) (bool, error) {
	if _, _, err := s.catalog.Topic(subjectKey, index); err != nil {
		return false, fmt.Errorf("service: toggle topic: %w", err)
	}
	id := models.TopicKey(subjectKey, index)

	s.mu.Lock()
	defer s.mu.Unlock()
	expanded := !s.state.ExpandedTopics[id]
	if expanded {
		s.state.ExpandedTopics[id] = true
	} else {
		delete(s.state.ExpandedTopics, id)
	}
	return expanded, nil
}

// TopicView renders a topic under the current display settings.
func (s *SessionService) TopicView(subjectKey string, index int) (*models.TopicView, error) {
	topic, _, err := s.catalog.Topic(subjectKey, index)
	if err != nil {
		return nil, fmt.Errorf("service: topic view: %w", err)
	}
	id := models.TopicKey(subjectKey, index)

	s.mu.Lock()
	defer s.mu.Unlock()
	view := &models.TopicView{
		ID:       id,
		Title:    topic.Title,
		Content:  topic.Content,
		Examples: append([]string{}, topic.Examples...),
		Expanded: s.state.ExpandedTopics[id],
		Favorite: s.isFavoriteLocked(id),
	}
	if s.state.Settings.ShowFormulas {
		view.Formulas = append([]string{}, topic.Formulas...)
	}
	if s.state.Settings.ShowKeyPoints {
		view.KeyPoints = append([]string{}, topic.KeyPoints...)
	}
	return view, nil
}

// AddFavorite bookmarks a topic. Adding one that is already present is a no-op.
func (s *SessionService) AddFavorite(subjectKey string, index int) (models.FavoriteItem, error) {
	item, err := s.catalog.FavoriteFromTopic(subjectKey, index)
	if err != nil {
		return models.FavoriteItem{}, fmt.Errorf("service: add favorite: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isFavoriteLocked(item.ID) {
		s.state.Favorites = append(s.state.Favorites, item)
	}
	return item, nil
}

// RemoveFavorite reports whether an entry was removed.
func (s *SessionService) RemoveFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.state.Favorites {
		if f.ID == id {
			s.state.Favorites = append(s.state.Favorites[:i:i], s.state.Favorites[i+1:]...)
			return true
		}
	}
	return false
}

func (s *SessionService) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isFavoriteLocked(id)
}

func (s *SessionService) isFavoriteLocked(id string) bool {
	for _, f := range s.state.Favorites {
		if f.ID == id {
			return true
		}
	}
	return false
}

// Ask appends the query and the canned reply to the chat and returns the
// reply. A blank query is ignored and yields nil.
func (s *SessionService) Ask(query string) *models.ChatMessage {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	branchName := s.catalog.BranchName(s.state.SelectedBranch)
	reply := models.ChatMessage{
		Type: models.MessageAI,
		Text: assistant.Respond(query, assistant.Context{BranchName: branchName}),
	}
	s.state.ChatMessages = append(s.state.ChatMessages,
		models.ChatMessage{Type: models.MessageUser, Text: query},
		reply,
	)
	s.log.Debug("answered query", "rule", assistant.Classify(query), "branch", s.state.SelectedBranch)
	return &reply
}

func (s *SessionService) ClearChat() {
	s.mu.Lock()
	s.state.ChatMessages = []models.ChatMessage{}
	s.mu.Unlock()
}

func (s *SessionService) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// UpdateSettings replaces the settings value as a whole.
func (s *SessionService) UpdateSettings(settings models.Settings) error {
	if err := s.validateSettings(settings); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Settings = settings
	s.mu.Unlock()
	return nil
}

func (s *SessionService) validateSettings(settings models.Settings) error {
	switch {
	case !settings.Theme.Valid():
		return errors.New("theme must be 'light' or 'dark'")
	case !settings.FontSize.Valid():
		return errors.New("fontSize must be 'small', 'medium' or 'large'")
	case !settings.AIModel.Valid():
		return errors.New("aiModel must be 'basic', 'advanced' or 'expert'")
	case !s.catalog.HasMode(settings.DefaultMode):
		return fmt.Errorf("defaultMode %q: %w", settings.DefaultMode, catalog.ErrModeNotFound)
	case !s.catalog.HasBranch(settings.DefaultBranch):
		return fmt.Errorf("defaultBranch %q: %w", settings.DefaultBranch, catalog.ErrBranchNotFound)
	case strings.TrimSpace(settings.Language) == "":
		return errors.New("language is required")
	}
	return nil
}

func (s *SessionService) SetDarkMode(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dark {
		s.state.Settings.Theme = models.ThemeDark
	} else {
		s.state.Settings.Theme = models.ThemeLight
	}
}

// SaveSettings persists the current snapshot with the context captured at
// Startup and reports the outcome as a notice.
func (s *SessionService) SaveSettings() error {
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.prefs.Save(s.context(), snap); err != nil {
		s.log.Error("save failed", "error", err)
		s.notify(events.NewError(NoticeSaveFailed))
		return fmt.Errorf("service: %w", err)
	}
	s.notify(events.NewSuccess(NoticeSaved))
	return nil
}

func (s *SessionService) ExportSettings() ([]byte, error) {
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return s.prefs.Export(snap)
}

// ImportSettings merges an exported document into the session. On failure
// the state is left untouched.
func (s *SessionService) ImportSettings(data []byte) error {
	s.mu.Lock()
	current := s.snapshotLocked()
	merged, err := s.prefs.Import(data, current)
	if err == nil {
		s.state.Settings = merged.Settings
		s.state.Favorites = merged.Favorites
		s.state.ChatMessages = merged.ChatMessages
	}
	state := s.copyStateLocked()
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("import rejected", "error", err)
		s.notify(events.NewError(NoticeImportInvalid))
		return err
	}
	s.notify(events.NewSuccess(NoticeImported))
	s.emit(s.context(), events.StateChangedEvent, state)
	return nil
}

// ResetSettings restores default settings and keeps favorites and chat.
func (s *SessionService) ResetSettings() models.Settings {
	s.mu.Lock()
	reset := s.prefs.Reset(s.snapshotLocked())
	s.state.Settings = reset.Settings
	state := s.copyStateLocked()
	s.mu.Unlock()

	s.emit(s.context(), events.StateChangedEvent, state)
	return reset.Settings
}

func (s *SessionService) notify(n events.Notice) {
	s.emit(s.context(), events.NoticeEvent, n)
}

func (s *SessionService) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}
