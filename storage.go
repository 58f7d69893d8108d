package main

import (
	"fmt"

	gormlogger "gorm.io/gorm/logger"

	"studydesk/internal/config"
	"studydesk/internal/database"
	"studydesk/internal/logger"
	"studydesk/internal/repositories"
)

// openPreferenceStore opens the backend named in cfg. The returned close
// function is never nil.
func openPreferenceStore(cfg *config.Config, log *logger.Logger) (repositories.PreferenceRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		level := gormlogger.Warn
		if config.IsDevelopment() {
			level = gormlogger.Info
		}
		db, err := database.Init(database.Config{
			Path:     cfg.DBPath(),
			LogLevel: level,
			Logger:   log,
		})
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, fmt.Errorf("get sql db: %w", err)
		}
		log.Info("preference store opened", "backend", cfg.Storage.Backend, "path", cfg.DBPath())
		return repositories.NewPreferenceRepository(db), sqlDB.Close, nil

	case config.BackendFile:
		log.Info("preference store opened", "backend", cfg.Storage.Backend, "dir", cfg.PreferencesDir())
		return repositories.NewFilePreferenceRepository(cfg.PreferencesDir()), noop, nil

	case config.BackendKeyring:
		ring, err := repositories.OpenFileKeyring(cfg.PreferencesDir(), cfg.Storage.KeyringPassword)
		if err != nil {
			return nil, noop, err
		}
		log.Info("preference store opened", "backend", cfg.Storage.Backend, "dir", cfg.PreferencesDir())
		return repositories.NewKeyringPreferenceRepository(ring), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
