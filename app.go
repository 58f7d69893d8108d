package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"studydesk/internal/events"
	"studydesk/internal/logger"
	"studydesk/internal/services"
)

// App carries the native file dialogs around the session's export and
// import. Outcomes reach the frontend only as notices.
type App struct {
	ctx        context.Context
	session    *services.SessionService
	emit       events.Emitter
	log        *logger.Logger
	storeClose func() error
}

func NewApp(session *services.SessionService, emit events.Emitter, log *logger.Logger, storeClose func() error) *App {
	if emit == nil {
		emit = events.Nop
	}
	return &App{
		ctx:        context.Background(),
		session:    session,
		emit:       emit,
		log:        log.With("component", "app"),
		storeClose: storeClose,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	if a.storeClose != nil {
		if err := a.storeClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close preference store: %v", err))
		} else {
			runtime.LogInfo(ctx, "preference store closed")
		}
		a.storeClose = nil
	}
}

// ExportSettings writes the export document to a user-chosen file and returns
// its path. An empty path means the dialog was cancelled.
func (a *App) ExportSettings() (string, error) {
	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           "Export Settings",
		DefaultFilename: services.ExportFileName,
		Filters:         jsonFilters(),
	})
	if err != nil || path == "" {
		return "", err
	}
	if err := a.exportTo(path); err != nil {
		return "", err
	}
	return path, nil
}

// ImportSettings reads a user-chosen document into the session.
func (a *App) ImportSettings() error {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title:   "Import Settings",
		Filters: jsonFilters(),
	})
	if err != nil || path == "" {
		return err
	}
	return a.importFrom(path)
}

func (a *App) exportTo(path string) error {
	data, err := a.session.ExportSettings()
	if err != nil {
		a.emit(a.ctx, events.NoticeEvent, events.NewError("Failed to export settings"))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		a.log.Error("failed to write export", "path", path, "error", err)
		a.emit(a.ctx, events.NoticeEvent, events.NewError("Failed to export settings"))
		return fmt.Errorf("write export: %w", err)
	}
	a.log.Info("settings exported", "path", path)
	a.emit(a.ctx, events.NoticeEvent, events.NewInfo("Settings exported to "+path))
	return nil
}

// importFrom leaves the outcome notice of a parsed document to the session.
func (a *App) importFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		a.log.Error("failed to read import", "path", path, "error", err)
		a.emit(a.ctx, events.NoticeEvent, events.NewError(services.NoticeImportInvalid))
		return fmt.Errorf("read import: %w", err)
	}
	return a.session.ImportSettings(data)
}

func jsonFilters() []runtime.FileFilter {
	return []runtime.FileFilter{
		{DisplayName: "JSON files (*.json)", Pattern: "*.json"},
	}
}
