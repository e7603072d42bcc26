package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/config"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/controllers"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/models"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/opencv/memory"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/pipeline"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/render"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/services"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/shutdown"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/views"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Gene Venn"
	AppID      = "com.genomics.genevenn"
	AppVersion = "1.0.0"
)

// Application bundles the wired-up components of the desktop app
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	session    *models.SessionRepository

	memoryManager *memory.Manager
	shutdownMgr   *shutdown.Manager
}

// NewApplication wires the whole object graph from a validated config
func NewApplication(cfg *config.Config) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(1100, 760))
	window.CenterOnScreen()

	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel,
	})

	style, err := render.StyleFromConfig(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("invalid style configuration: %w", err)
	}

	memManager := memory.NewManager(appLogger)

	// Models
	session := models.NewSessionRepository(style, cfg.Engine.MaxSets)
	diagrams := models.NewDiagramRepository()

	// Engine and pipeline
	renderer := render.NewRenderer(memManager, appLogger)
	processor := pipeline.NewProcessor(renderer, cfg.EngineOptions(), cfg.Engine.CaseSensitive, cfg.Policy(), appLogger)
	saver := pipeline.NewSaver(appLogger)
	coordinator := pipeline.NewCoordinator(processor, saver, appLogger)

	// Services
	reader := workbook.NewReader(appLogger)
	workbookService := services.NewWorkbookService(reader, session, appLogger)
	diagramService := services.NewDiagramService(processor, renderer, session, diagrams, cfg.EngineOptions(), cfg.Policy(), appLogger)

	// MVC wiring
	controller := controllers.NewMainController(
		workbookService, diagramService, coordinator,
		session, diagrams,
		cfg.Output.DirName, appLogger,
	)
	view := views.NewMainView(window, cfg.Output.CombinedWorkbook)
	controller.SetMainView(view)

	// Teardown order is reverse of registration
	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register("memory manager", memManager)
	shutdownMgr.Register("session", session)
	shutdownMgr.Register("diagrams", diagrams)
	shutdownMgr.Register("controller", controller)
	shutdownMgr.Listen()

	application := &Application{
		fyneApp:       fyneApp,
		window:        window,
		logger:        appLogger,
		controller:    controller,
		view:          view,
		session:       session,
		memoryManager: memManager,
		shutdownMgr:   shutdownMgr,
	}
	application.setupWindowEvents()

	return application, nil
}

// Run shows the main window and blocks until the UI exits
func (a *Application) Run(ctx context.Context) error {
	go func() {
		select {
		case <-ctx.Done():
			a.shutdownMgr.Shutdown()
		case <-a.shutdownMgr.Done():
		}
	}()

	a.view.Show()
	a.fyneApp.Run()

	a.shutdownMgr.Shutdown()
	a.logger.Info("Application", "terminated", nil)
	return nil
}

// ApplyConfig picks up runtime config edits; only the style carries over
// into a running session.
func (a *Application) ApplyConfig(cfg *config.Config) {
	style, err := render.StyleFromConfig(cfg.Style)
	if err != nil {
		a.logger.Warning("Application", "ignoring invalid style change", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	a.session.SetStyle(style)
	a.logger.Info("Application", "style configuration reloaded", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
	a.window.SetMaster()
}
