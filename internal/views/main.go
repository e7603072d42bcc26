// Package views builds the main window from its components and exposes
// update methods for the controller. All UI mutation goes through fyne.Do.
package views

import (
	"image"
	"image/color"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// MainView represents the main application view
type MainView struct {
	window         fyne.Window
	mainContainer  *fyne.Container
	toolbar        *components.Toolbar
	diagramDisplay *components.DiagramDisplay
	stylePanel     *components.StylePanel
	regionList     *components.RegionList
	statusBar      *components.StatusBar

	// Event handlers, connected to the controller
	loadHandler       func()
	prevSheetHandler  func()
	nextSheetHandler  func()
	saveSheetHandler  func()
	saveAllHandler    func()
	labelsApply       func([]string)
	labelsReset       func()
	colorPickHandler  func(int)
	styleApplyHandler func(alpha, labelHeight string)
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window, combinedDefault bool) *MainView {
	view := &MainView{window: window}
	view.initializeComponents(combinedDefault)
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(combinedDefault bool) {
	mv.toolbar = components.NewToolbar(combinedDefault)
	mv.diagramDisplay = components.NewDiagramDisplay()
	mv.stylePanel = components.NewStylePanel()
	mv.regionList = components.NewRegionList()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	sidePanel := container.NewBorder(
		mv.stylePanel.GetContainer(),
		nil,
		nil,
		nil,
		mv.regionList.GetContainer(),
	)

	content := container.NewHSplit(
		mv.diagramDisplay.GetContainer(),
		sidePanel,
	)
	content.SetOffset(0.65)

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		content,
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetLoadHandler(func() {
		if mv.loadHandler != nil {
			mv.loadHandler()
		}
	})

	mv.toolbar.SetPrevHandler(func() {
		if mv.prevSheetHandler != nil {
			mv.prevSheetHandler()
		}
	})

	mv.toolbar.SetNextHandler(func() {
		if mv.nextSheetHandler != nil {
			mv.nextSheetHandler()
		}
	})

	mv.toolbar.SetSaveHandler(func() {
		if mv.saveSheetHandler != nil {
			mv.saveSheetHandler()
		}
	})

	mv.toolbar.SetSaveAllHandler(func() {
		if mv.saveAllHandler != nil {
			mv.saveAllHandler()
		}
	})

	mv.stylePanel.SetLabelsApplyHandler(func(labels []string) {
		if mv.labelsApply != nil {
			mv.labelsApply(labels)
		}
	})

	mv.stylePanel.SetLabelsResetHandler(func() {
		if mv.labelsReset != nil {
			mv.labelsReset()
		}
	})

	mv.stylePanel.SetColorPickHandler(func(index int) {
		if mv.colorPickHandler != nil {
			mv.colorPickHandler(index)
		}
	})

	mv.stylePanel.SetStyleApplyHandler(func(alpha, labelHeight string) {
		if mv.styleApplyHandler != nil {
			mv.styleApplyHandler(alpha, labelHeight)
		}
	})
}

// Event handler setters, called by the controller

// SetLoadHandler sets the handler for workbook load requests
func (mv *MainView) SetLoadHandler(handler func()) {
	mv.loadHandler = handler
}

// SetPrevSheetHandler sets the handler for previous sheet requests
func (mv *MainView) SetPrevSheetHandler(handler func()) {
	mv.prevSheetHandler = handler
}

// SetNextSheetHandler sets the handler for next sheet requests
func (mv *MainView) SetNextSheetHandler(handler func()) {
	mv.nextSheetHandler = handler
}

// SetSaveSheetHandler sets the handler for save current sheet requests
func (mv *MainView) SetSaveSheetHandler(handler func()) {
	mv.saveSheetHandler = handler
}

// SetSaveAllHandler sets the handler for save all sheets requests
func (mv *MainView) SetSaveAllHandler(handler func()) {
	mv.saveAllHandler = handler
}

// SetLabelsApplyHandler sets the handler for label edits
func (mv *MainView) SetLabelsApplyHandler(handler func([]string)) {
	mv.labelsApply = handler
}

// SetLabelsResetHandler sets the handler for label resets
func (mv *MainView) SetLabelsResetHandler(handler func()) {
	mv.labelsReset = handler
}

// SetColorPickHandler sets the handler for color swatch taps
func (mv *MainView) SetColorPickHandler(handler func(int)) {
	mv.colorPickHandler = handler
}

// SetStyleApplyHandler sets the handler for style edits
func (mv *MainView) SetStyleApplyHandler(handler func(alpha, labelHeight string)) {
	mv.styleApplyHandler = handler
}

// UI update methods, called by the controller

// SetDiagram updates the diagram display
func (mv *MainView) SetDiagram(img image.Image) {
	fyne.Do(func() {
		mv.diagramDisplay.SetDiagram(img)
	})
}

// SetRegions updates the region list
func (mv *MainView) SetRegions(entries []components.RegionEntry) {
	fyne.Do(func() {
		mv.regionList.SetRegions(entries)
	})
}

// SetLabels updates the editable label entries
func (mv *MainView) SetLabels(labels []string) {
	fyne.Do(func() {
		mv.stylePanel.SetLabels(labels)
	})
}

// SetStyleValues updates the style entries
func (mv *MainView) SetStyleValues(alpha, labelHeight float64) {
	fyne.Do(func() {
		mv.stylePanel.SetStyleValues(alpha, labelHeight)
	})
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// SetSheetPosition updates the sheet cursor display
func (mv *MainView) SetSheetPosition(index, total int, name string) {
	fyne.Do(func() {
		mv.statusBar.SetSheetPosition(index, total, name)
	})
}

// EnableWorkbookOperations toggles controls that need a loaded workbook
func (mv *MainView) EnableWorkbookOperations(enabled bool) {
	fyne.Do(func() {
		mv.toolbar.EnableWorkbookOperations(enabled)
	})
}

// SetBusy toggles the toolbar while an export runs
func (mv *MainView) SetBusy(busy bool) {
	fyne.Do(func() {
		mv.toolbar.SetBusy(busy)
	})
}

// CombinedWorkbook reports whether the combined workbook export is on
func (mv *MainView) CombinedWorkbook() bool {
	return mv.toolbar.CombinedWorkbook()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowOpenDialog displays a workbook selection dialog
func (mv *MainView) ShowOpenDialog(callback func(fyne.URIReadCloser, error)) {
	fyne.Do(func() {
		fd := dialog.NewFileOpen(callback, mv.window)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx", ".xlsm"}))
		fd.Show()
	})
}

// ShowColorPicker displays a color picker dialog
func (mv *MainView) ShowColorPicker(title, message string, callback func(c color.Color)) {
	fyne.Do(func() {
		picker := dialog.NewColorPicker(title, message, callback, mv.window)
		picker.Advanced = true
		picker.Show()
	})
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// ResetView resets the view to initial state
func (mv *MainView) ResetView() {
	fyne.Do(func() {
		mv.diagramDisplay.Clear()
		mv.regionList.Clear()
		mv.stylePanel.Reset()
		mv.statusBar.Reset()
		mv.toolbar.Reset()
	})
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}
