// Package components holds the reusable widgets of the main window
package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar represents the main application toolbar
type Toolbar struct {
	container     *fyne.Container
	loadButton    *widget.Button
	prevButton    *widget.Button
	nextButton    *widget.Button
	saveButton    *widget.Button
	saveAllButton *widget.Button
	combinedCheck *widget.Check

	// Event handlers
	loadHandler    func()
	prevHandler    func()
	nextHandler    func()
	saveHandler    func()
	saveAllHandler func()

	combined bool
}

// NewToolbar creates a new toolbar component
func NewToolbar(combinedDefault bool) *Toolbar {
	toolbar := &Toolbar{combined: combinedDefault}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.loadButton = widget.NewButton("Load Workbook", nil)
	t.loadButton.Importance = widget.HighImportance

	t.prevButton = widget.NewButton("◀ Prev Sheet", nil)
	t.prevButton.Disable()

	t.nextButton = widget.NewButton("Next Sheet ▶", nil)
	t.nextButton.Disable()

	t.saveButton = widget.NewButton("Save This Sheet", nil)
	t.saveButton.Importance = widget.HighImportance
	t.saveButton.Disable()

	t.saveAllButton = widget.NewButton("Save All Sheets", nil)
	t.saveAllButton.Importance = widget.HighImportance
	t.saveAllButton.Disable()

	t.combinedCheck = widget.NewCheck("Combined workbook", func(checked bool) {
		t.combined = checked
	})
	t.combinedCheck.SetChecked(t.combined)
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	navigationSection := container.NewHBox(
		t.prevButton,
		t.nextButton,
	)

	exportSection := container.NewHBox(
		t.saveButton,
		t.saveAllButton,
		t.combinedCheck,
	)

	t.container = container.NewHBox(
		t.loadButton,
		widget.NewSeparator(),
		navigationSection,
		widget.NewSeparator(),
		exportSection,
	)
}

// setupEventHandlers connects button events
func (t *Toolbar) setupEventHandlers() {
	t.loadButton.OnTapped = func() {
		if t.loadHandler != nil {
			t.loadHandler()
		}
	}

	t.prevButton.OnTapped = func() {
		if t.prevHandler != nil {
			t.prevHandler()
		}
	}

	t.nextButton.OnTapped = func() {
		if t.nextHandler != nil {
			t.nextHandler()
		}
	}

	t.saveButton.OnTapped = func() {
		if t.saveHandler != nil {
			t.saveHandler()
		}
	}

	t.saveAllButton.OnTapped = func() {
		if t.saveAllHandler != nil {
			t.saveAllHandler()
		}
	}
}

// SetLoadHandler sets the handler for load requests
func (t *Toolbar) SetLoadHandler(handler func()) {
	t.loadHandler = handler
}

// SetPrevHandler sets the handler for previous sheet requests
func (t *Toolbar) SetPrevHandler(handler func()) {
	t.prevHandler = handler
}

// SetNextHandler sets the handler for next sheet requests
func (t *Toolbar) SetNextHandler(handler func()) {
	t.nextHandler = handler
}

// SetSaveHandler sets the handler for save current sheet requests
func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

// SetSaveAllHandler sets the handler for save all sheets requests
func (t *Toolbar) SetSaveAllHandler(handler func()) {
	t.saveAllHandler = handler
}

// CombinedWorkbook reports whether the combined workbook export is on
func (t *Toolbar) CombinedWorkbook() bool {
	return t.combined
}

// EnableWorkbookOperations enables or disables controls that need a
// loaded workbook.
func (t *Toolbar) EnableWorkbookOperations(enabled bool) {
	if enabled {
		t.prevButton.Enable()
		t.nextButton.Enable()
		t.saveButton.Enable()
		t.saveAllButton.Enable()
	} else {
		t.prevButton.Disable()
		t.nextButton.Disable()
		t.saveButton.Disable()
		t.saveAllButton.Disable()
	}
}

// SetBusy disables the toolbar while an export is running
func (t *Toolbar) SetBusy(busy bool) {
	if busy {
		t.loadButton.Disable()
		t.EnableWorkbookOperations(false)
	} else {
		t.loadButton.Enable()
		t.EnableWorkbookOperations(true)
	}
}

// Reset returns the toolbar to its initial state
func (t *Toolbar) Reset() {
	t.loadButton.Enable()
	t.EnableWorkbookOperations(false)
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
