package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StylePanel edits the set labels and diagram appearance for the current
// sheet.
type StylePanel struct {
	container *fyne.Container

	labelsBox    *fyne.Container
	labelEntries []*widget.Entry
	applyLabels  *widget.Button
	resetLabels  *widget.Button

	colorsBox   *fyne.Container
	alphaEntry  *widget.Entry
	heightEntry *widget.Entry
	applyStyle  *widget.Button

	// Event handlers
	labelsApplyHandler func([]string)
	labelsResetHandler func()
	colorPickHandler   func(int)
	styleApplyHandler  func(alpha, labelHeight string)
}

// NewStylePanel creates a new style panel component
func NewStylePanel() *StylePanel {
	panel := &StylePanel{}
	panel.createComponents()
	panel.buildLayout()
	panel.setupEventHandlers()
	return panel
}

func (sp *StylePanel) createComponents() {
	sp.labelsBox = container.NewVBox()

	sp.applyLabels = widget.NewButton("Apply Labels", nil)
	sp.resetLabels = widget.NewButton("Reset", nil)

	sp.colorsBox = container.NewHBox()

	sp.alphaEntry = widget.NewEntry()
	sp.alphaEntry.SetPlaceHolder("0.45")

	sp.heightEntry = widget.NewEntry()
	sp.heightEntry.SetPlaceHolder("1.12")

	sp.applyStyle = widget.NewButton("Apply Style", nil)
}

func (sp *StylePanel) buildLayout() {
	labelSection := container.NewVBox(
		widget.NewLabel("Set Labels"),
		sp.labelsBox,
		container.NewHBox(sp.applyLabels, sp.resetLabels),
	)

	styleForm := container.NewVBox(
		widget.NewLabel("Colors"),
		sp.colorsBox,
		widget.NewForm(
			widget.NewFormItem("Fill opacity (0-1)", sp.alphaEntry),
			widget.NewFormItem("Label height (0.9-1.6)", sp.heightEntry),
		),
		sp.applyStyle,
	)

	sp.container = container.NewVBox(
		labelSection,
		widget.NewSeparator(),
		styleForm,
	)
}

func (sp *StylePanel) setupEventHandlers() {
	sp.applyLabels.OnTapped = func() {
		if sp.labelsApplyHandler != nil {
			sp.labelsApplyHandler(sp.currentLabels())
		}
	}

	sp.resetLabels.OnTapped = func() {
		if sp.labelsResetHandler != nil {
			sp.labelsResetHandler()
		}
	}

	sp.applyStyle.OnTapped = func() {
		if sp.styleApplyHandler != nil {
			sp.styleApplyHandler(sp.alphaEntry.Text, sp.heightEntry.Text)
		}
	}
}

func (sp *StylePanel) currentLabels() []string {
	labels := make([]string, len(sp.labelEntries))
	for i, entry := range sp.labelEntries {
		labels[i] = entry.Text
	}
	return labels
}

// SetLabelsApplyHandler sets the handler for label apply requests
func (sp *StylePanel) SetLabelsApplyHandler(handler func([]string)) {
	sp.labelsApplyHandler = handler
}

// SetLabelsResetHandler sets the handler for label reset requests
func (sp *StylePanel) SetLabelsResetHandler(handler func()) {
	sp.labelsResetHandler = handler
}

// SetColorPickHandler sets the handler invoked with the set index when a
// color swatch is tapped.
func (sp *StylePanel) SetColorPickHandler(handler func(int)) {
	sp.colorPickHandler = handler
}

// SetStyleApplyHandler sets the handler for style apply requests
func (sp *StylePanel) SetStyleApplyHandler(handler func(alpha, labelHeight string)) {
	sp.styleApplyHandler = handler
}

// SetLabels rebuilds the label entries for the current sheet
func (sp *StylePanel) SetLabels(labels []string) {
	sp.labelEntries = make([]*widget.Entry, len(labels))
	objects := make([]fyne.CanvasObject, len(labels))
	for i, label := range labels {
		entry := widget.NewEntry()
		entry.SetText(label)
		sp.labelEntries[i] = entry
		objects[i] = container.NewBorder(nil, nil, widget.NewLabel(fmt.Sprintf("Set %d", i+1)), nil, entry)
	}

	sp.labelsBox.Objects = objects
	sp.labelsBox.Refresh()
	sp.rebuildColorButtons(len(labels))
}

// SetStyleValues updates the alpha and label height entries
func (sp *StylePanel) SetStyleValues(alpha, labelHeight float64) {
	sp.alphaEntry.SetText(fmt.Sprintf("%.2f", alpha))
	sp.heightEntry.SetText(fmt.Sprintf("%.2f", labelHeight))
}

func (sp *StylePanel) rebuildColorButtons(count int) {
	objects := make([]fyne.CanvasObject, count)
	for i := 0; i < count; i++ {
		index := i
		objects[i] = widget.NewButton(fmt.Sprintf("Color %d", i+1), func() {
			if sp.colorPickHandler != nil {
				sp.colorPickHandler(index)
			}
		})
	}

	sp.colorsBox.Objects = objects
	sp.colorsBox.Refresh()
}

// Reset clears the panel
func (sp *StylePanel) Reset() {
	sp.labelEntries = nil
	sp.labelsBox.Objects = nil
	sp.labelsBox.Refresh()
	sp.colorsBox.Objects = nil
	sp.colorsBox.Refresh()
}

// GetContainer returns the panel container
func (sp *StylePanel) GetContainer() *fyne.Container {
	return sp.container
}
