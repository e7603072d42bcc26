// Package controllers wires the view events to the services and keeps
// the session and the screen in step.
package controllers

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"sync"
	"time"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/models"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/pipeline"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/services"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/views"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/views/components"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"

	"fyne.io/fyne/v2"
)

const component = "MainController"

// MainController orchestrates the application using the MVC pattern
type MainController struct {
	// Services
	workbookService *services.WorkbookService
	diagramService  *services.DiagramService
	coordinator     *pipeline.Coordinator

	// Models
	session  *models.SessionRepository
	diagrams *models.DiagramRepository

	// Views
	mainView *views.MainView

	outputDirName string
	logger        logger.Logger

	mu   sync.Mutex
	busy bool
}

// NewMainController creates a new main controller
func NewMainController(
	workbookService *services.WorkbookService,
	diagramService *services.DiagramService,
	coordinator *pipeline.Coordinator,
	session *models.SessionRepository,
	diagrams *models.DiagramRepository,
	outputDirName string,
	log logger.Logger,
) *MainController {
	return &MainController{
		workbookService: workbookService,
		diagramService:  diagramService,
		coordinator:     coordinator,
		session:         session,
		diagrams:        diagrams,
		outputDirName:   outputDirName,
		logger:          log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetLoadHandler(mc.LoadWorkbook)
	mc.mainView.SetPrevSheetHandler(mc.PrevSheet)
	mc.mainView.SetNextSheetHandler(mc.NextSheet)
	mc.mainView.SetSaveSheetHandler(mc.SaveCurrentSheet)
	mc.mainView.SetSaveAllHandler(mc.SaveAllSheets)
	mc.mainView.SetLabelsApplyHandler(mc.ApplyLabels)
	mc.mainView.SetLabelsResetHandler(mc.ResetLabels)
	mc.mainView.SetColorPickHandler(mc.PickColor)
	mc.mainView.SetStyleApplyHandler(mc.ApplyStyle)
}

// LoadWorkbook handles workbook load requests
func (mc *MainController) LoadWorkbook() {
	mc.mainView.ShowOpenDialog(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.handleError(err)
			return
		}
		if reader == nil {
			return
		}
		go mc.loadWorkbookFromReader(reader)
	})
}

func (mc *MainController) loadWorkbookFromReader(reader fyne.URIReadCloser) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mc.mainView.UpdateStatus("Loading workbook...")

	wb, err := mc.workbookService.LoadFromURI(ctx, reader)
	if err != nil {
		mc.handleError(err)
		mc.mainView.UpdateStatus("Ready")
		return
	}

	mc.mainView.EnableWorkbookOperations(true)
	mc.mainView.UpdateStatus(fmt.Sprintf("Loaded %d comparison sheet(s)", len(wb.Sheets)))
	mc.refreshCurrentSheet()
}

// PrevSheet moves the sheet cursor back and refreshes the display
func (mc *MainController) PrevSheet() {
	mc.session.Prev()
	go mc.refreshCurrentSheet()
}

// NextSheet advances the sheet cursor and refreshes the display
func (mc *MainController) NextSheet() {
	mc.session.Next()
	go mc.refreshCurrentSheet()
}

// ApplyLabels stores edited labels for the current sheet and re-renders
func (mc *MainController) ApplyLabels(labels []string) {
	sheet, ok := mc.session.CurrentSheet()
	if !ok {
		return
	}
	if err := mc.session.SetLabels(sheet.Name, labels); err != nil {
		mc.handleError(err)
		return
	}
	go mc.refreshCurrentSheet()
}

// ResetLabels restores the current sheet's labels to its column headers
func (mc *MainController) ResetLabels() {
	sheet, ok := mc.session.CurrentSheet()
	if !ok {
		return
	}
	mc.session.ResetLabels(sheet.Name)
	go mc.refreshCurrentSheet()
}

// PickColor opens a color picker for one set's fill color
func (mc *MainController) PickColor(index int) {
	title := fmt.Sprintf("Set %d fill color", index+1)
	mc.mainView.ShowColorPicker(title, "Choose the fill color", func(c color.Color) {
		r, g, b, _ := c.RGBA()
		picked := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}

		style := mc.session.Style().SetColor(index, picked)
		mc.session.SetStyle(style)
		go mc.refreshCurrentSheet()
	})
}

// ApplyStyle parses and applies the alpha and label height entries
func (mc *MainController) ApplyStyle(alphaText, heightText string) {
	style := mc.session.Style()

	if alphaText != "" {
		alpha, err := strconv.ParseFloat(alphaText, 64)
		if err != nil {
			mc.handleError(fmt.Errorf("fill opacity must be a number, got %q", alphaText))
			return
		}
		style.Alpha = alpha
	}

	if heightText != "" {
		height, err := strconv.ParseFloat(heightText, 64)
		if err != nil {
			mc.handleError(fmt.Errorf("label height must be a number, got %q", heightText))
			return
		}
		style.LabelHeight = height
	}

	if err := style.Validate(); err != nil {
		mc.handleError(err)
		return
	}

	mc.session.SetStyle(style)
	go mc.refreshCurrentSheet()
}

// SaveCurrentSheet exports the current sheet's PNG and CSV
func (mc *MainController) SaveCurrentSheet() {
	sheet, ok := mc.session.CurrentSheet()
	if !ok {
		return
	}
	if !mc.beginExport() {
		return
	}

	go func() {
		defer mc.endExport()

		mc.mainView.UpdateStatus("Saving...")
		saved, err := mc.coordinator.ExportSheet(sheet, mc.session.Labels(sheet.Name), mc.session, mc.session.WorkbookPath(), mc.outputDirName)
		if err != nil {
			mc.handleError(err)
			mc.mainView.UpdateStatus("Save failed")
			return
		}

		mc.mainView.UpdateStatus("Saved")
		mc.mainView.ShowInfo("Saved", fmt.Sprintf("Wrote:\n%s\n%s", saved.PNGPath, saved.CSVPath))
	}()
}

// SaveAllSheets exports every sheet, optionally with a combined workbook
func (mc *MainController) SaveAllSheets() {
	if !mc.session.HasData() {
		return
	}
	if !mc.beginExport() {
		return
	}

	combined := mc.mainView.CombinedWorkbook()

	go func() {
		defer mc.endExport()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		mc.mainView.UpdateStatus("Saving all sheets...")

		wb := &workbook.Workbook{Path: mc.session.WorkbookPath(), Sheets: mc.session.Sheets()}
		labelsFor := func(sheet workbook.Sheet) []string {
			return mc.session.Labels(sheet.Name)
		}
		result, err := mc.coordinator.RunBatch(ctx, wb, labelsFor, mc.session, mc.outputDirName, combined)
		if err != nil {
			mc.handleError(err)
			mc.mainView.UpdateStatus("Save failed")
			return
		}

		message := fmt.Sprintf("Exported %d sheet(s)", len(result.Processed))
		if len(result.Skipped) > 0 {
			message += fmt.Sprintf(", skipped %d", len(result.Skipped))
		}
		if result.CombinedPath != "" {
			message += fmt.Sprintf("\nCombined workbook: %s", result.CombinedPath)
		}

		mc.mainView.UpdateStatus("Saved")
		mc.mainView.ShowInfo("Batch export", message)
	}()
}

// refreshCurrentSheet rebuilds the preview and pushes it to the view
func (mc *MainController) refreshCurrentSheet() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	index, total, name := mc.session.Position()
	mc.mainView.SetSheetPosition(index, total, name)

	diagram, err := mc.diagramService.BuildPreview(ctx)
	if err != nil {
		mc.handleError(err)
		return
	}

	mc.mainView.SetDiagram(diagram.Image)
	mc.mainView.SetLabels(mc.session.Labels(diagram.SheetName))

	style := mc.session.Style()
	mc.mainView.SetStyleValues(style.Alpha, style.LabelHeight)

	entries := make([]components.RegionEntry, 0, len(diagram.Result.Regions()))
	for _, region := range diagram.Result.Regions() {
		entries = append(entries, components.RegionEntry{
			Title:   diagram.Result.CombinationTitle(region.Combination),
			Members: region.Members,
		})
	}
	mc.mainView.SetRegions(entries)
}

func (mc *MainController) beginExport() bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.busy {
		return false
	}
	mc.busy = true
	mc.mainView.SetBusy(true)
	return true
}

func (mc *MainController) endExport() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.busy = false
	mc.mainView.SetBusy(false)
}

// handleError surfaces an error in a dialog and the log
func (mc *MainController) handleError(err error) {
	mc.logger.Error(component, err, nil)
	if mc.mainView != nil {
		mc.mainView.ShowError(err)
	}
}

// Shutdown performs cleanup when the application closes
func (mc *MainController) Shutdown() {
	mc.diagramService.Cleanup()
	mc.workbookService.Cleanup()
}
