package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"studydesk/internal/logger"
	"studydesk/internal/models"
	"studydesk/internal/repositories"
)

// ErrInvalidConfig is returned by Import when the document cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration file")

// ExportFileName is the suggested name for exported documents.
const ExportFileName = "ai-assistant-config.json"

// CatalogIndex answers whether a settings key resolves in the catalogue.
type CatalogIndex interface {
	HasBranch(key string) bool
	HasMode(key string) bool
}

type PreferenceService interface {
	Load(ctx context.Context) models.Snapshot
	Save(ctx context.Context, snap models.Snapshot) error
	Export(snap models.Snapshot) ([]byte, error)
	Import(data []byte, current models.Snapshot) (models.Snapshot, error)
	Reset(current models.Snapshot) models.Snapshot
}

type preferenceService struct {
	repo    repositories.PreferenceRepository
	catalog CatalogIndex
	log     *logger.Logger
}

func NewPreferenceService(repo repositories.PreferenceRepository, catalog CatalogIndex, log *logger.Logger) PreferenceService {
	if log == nil {
		log = logger.NewNop()
	}
	return &preferenceService{
		repo:    repo,
		catalog: catalog,
		log:     log.With("service", "preferences"),
	}
}

// Load reads the three keys independently. A key that is missing or cannot be
// decoded keeps its default; it never prevents the others from loading.
func (s *preferenceService) Load(ctx context.Context) models.Snapshot {
	snap := models.NewSnapshot()

	settings := models.DefaultSettings()
	if s.loadKey(ctx, models.PrefUserSettings, &settings) {
		snap.Settings = s.sanitizeSettings(settings)
	}

	var favorites []models.FavoriteItem
	if s.loadKey(ctx, models.PrefFavorites, &favorites) {
		snap.Favorites = sanitizeFavorites(favorites)
	}

	var chat []models.ChatMessage
	if s.loadKey(ctx, models.PrefChatHistory, &chat) {
		snap.ChatMessages = sanitizeChat(chat)
	}

	return snap
}

func (s *preferenceService) loadKey(ctx context.Context, key string, target interface{}) bool {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrPreferenceNotFound) {
			s.log.Debug("preference not found, using default", "key", key)
		} else {
			s.log.Warn("preference read failed, using default", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		s.log.Warn("preference is corrupt, using default", "key", key, "error", err)
		return false
	}
	return true
}

// Save writes settings and favorites, and chat history only when autoSave is on.
func (s *preferenceService) Save(ctx context.Context, snap models.Snapshot) error {
	snap = snap.Clone()
	if err := s.saveKey(ctx, models.PrefUserSettings, snap.Settings); err != nil {
		return err
	}
	if err := s.saveKey(ctx, models.PrefFavorites, snap.Favorites); err != nil {
		return err
	}
	if snap.Settings.AutoSave {
		if err := s.saveKey(ctx, models.PrefChatHistory, snap.ChatMessages); err != nil {
			return err
		}
	}
	s.log.Info("preferences saved", "favorites", len(snap.Favorites), "chat", len(snap.ChatMessages), "autoSave", snap.Settings.AutoSave)
	return nil
}

func (s *preferenceService) saveKey(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Export renders the transferable document. Chat history is left empty when
// autoSave is off.
func (s *preferenceService) Export(snap models.Snapshot) ([]byte, error) {
	doc := snap.Clone()
	if !doc.Settings.AutoSave {
		doc.ChatMessages = []models.ChatMessage{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("service: export preferences: %w", err)
	}
	return data, nil
}

// Import parses data and merges it over current. On any error current is
// returned unchanged together with ErrInvalidConfig.
func (s *preferenceService) Import(data []byte, current models.Snapshot) (models.Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc == nil {
		return current, fmt.Errorf("%w: document is null", ErrInvalidConfig)
	}

	merged, err := s.mergeImport(doc, current)
	if err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	s.log.Info("preferences imported", "favorites", len(merged.Favorites), "chat", len(merged.ChatMessages))
	return merged, nil
}

// mergeImport spells out the fallback of every top-level field:
//
//	settings     absent or null -> current settings
//	favorites    absent or null -> empty
//	chatMessages absent or null -> empty
//
// A present settings object replaces the current one; fields it omits take
// their default values.
func (s *preferenceService) mergeImport(doc map[string]json.RawMessage, current models.Snapshot) (models.Snapshot, error) {
	out := models.Snapshot{
		Settings:     current.Settings,
		Favorites:    []models.FavoriteItem{},
		ChatMessages: []models.ChatMessage{},
	}

	if raw, ok := present(doc, "settings"); ok {
		settings := models.DefaultSettings()
		if err := json.Unmarshal(raw, &settings); err != nil {
			return current, fmt.Errorf("settings: %w", err)
		}
		out.Settings = s.sanitizeSettings(settings)
	}

	if raw, ok := present(doc, "favorites"); ok {
		var favorites []models.FavoriteItem
		if err := json.Unmarshal(raw, &favorites); err != nil {
			return current, fmt.Errorf("favorites: %w", err)
		}
		out.Favorites = sanitizeFavorites(favorites)
	}

	if raw, ok := present(doc, "chatMessages"); ok {
		var chat []models.ChatMessage
		if err := json.Unmarshal(raw, &chat); err != nil {
			return current, fmt.Errorf("chatMessages: %w", err)
		}
		out.ChatMessages = sanitizeChat(chat)
	}

	return out, nil
}

func present(doc map[string]json.RawMessage, field string) (json.RawMessage, bool) {
	raw, ok := doc[field]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

// Reset restores default settings and leaves favorites and chat alone.
func (s *preferenceService) Reset(current models.Snapshot) models.Snapshot {
	out := current.Clone()
	out.Settings = models.DefaultSettings()
	return out
}

// sanitizeSettings replaces each field that does not resolve with its default.
func (s *preferenceService) sanitizeSettings(in models.Settings) models.Settings {
	def := models.DefaultSettings()
	out := in

	if !out.Theme.Valid() {
		s.log.Warn("unknown theme, using default", "theme", in.Theme)
		out.Theme = def.Theme
	}
	if !out.FontSize.Valid() {
		s.log.Warn("unknown font size, using default", "fontSize", in.FontSize)
		out.FontSize = def.FontSize
	}
	if !out.AIModel.Valid() {
		s.log.Warn("unknown ai model, using default", "aiModel", in.AIModel)
		out.AIModel = def.AIModel
	}
	if s.catalog != nil && !s.catalog.HasMode(out.DefaultMode) {
		s.log.Warn("unknown default mode, using default", "defaultMode", in.DefaultMode)
		out.DefaultMode = def.DefaultMode
	}
	if s.catalog != nil && !s.catalog.HasBranch(out.DefaultBranch) {
		s.log.Warn("unknown default branch, using default", "defaultBranch", in.DefaultBranch)
		out.DefaultBranch = def.DefaultBranch
	}
	if strings.TrimSpace(out.Language) == "" {
		out.Language = def.Language
	}
	return out
}

// sanitizeFavorites drops entries without an id and keeps the first of any
// duplicates.
func sanitizeFavorites(in []models.FavoriteItem) []models.FavoriteItem {
	out := make([]models.FavoriteItem, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, f := range in {
		if f.ID == "" || seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		out = append(out, f)
	}
	return out
}

func sanitizeChat(in []models.ChatMessage) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(in))
	for _, m := range in {
		if !m.Type.Valid() {
			continue
		}
		out = append(out, m)
	}
	return out
}
