package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"studydesk/internal/catalog"
	"studydesk/internal/config"
	"studydesk/internal/events"
	"studydesk/internal/logger"
	"studydesk/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

const configFile = "studydesk.yaml"

func main() {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer log.Sync()
	log.Info("config loaded", "file", configFile, "backend", cfg.Storage.Backend, "dataDir", cfg.Storage.DataDir)

	store, closeStore, err := openPreferenceStore(cfg, log)
	if err != nil {
		log.Error("failed to open preference store", "backend", cfg.Storage.Backend, "error", err)
		return
	}

	cat, err := catalog.Default()
	if err != nil {
		log.Error("failed to load catalogue", "error", err)
		return
	}

	svc := services.NewServices(store, cat, events.Runtime, log)
	app := NewApp(svc.Session, events.Runtime, log, closeStore)

	err = wails.Run(&options.App{
		Title:  "StudyDesk",
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "StudyDesk",
		},
		BackgroundColour: &options.RGBA{R: 17, G: 24, B: 39, A: 1},
		Logger:           logger.NewWailsLogger(log),
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			svc.Session.Startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			svc.Session,
		},
	})

	if err != nil {
		log.Error("wails exited with error", "error", err)
	}
}
