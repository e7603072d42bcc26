package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DiagramDisplay shows the rendered diagram for the current sheet
type DiagramDisplay struct {
	container    *fyne.Container
	diagramImage *canvas.Image
	placeholder  *widget.Label
	hasDiagram   bool
}

// NewDiagramDisplay creates a new diagram display component
func NewDiagramDisplay() *DiagramDisplay {
	display := &DiagramDisplay{}
	display.createComponents()
	display.buildLayout()
	return display
}

func (dd *DiagramDisplay) createComponents() {
	dd.diagramImage = canvas.NewImageFromImage(nil)
	dd.diagramImage.FillMode = canvas.ImageFillContain
	dd.diagramImage.SetMinSize(fyne.NewSize(480, 400))
	dd.diagramImage.Hide()

	dd.placeholder = widget.NewLabel("Load a workbook to see its Venn diagram")
	dd.placeholder.Alignment = fyne.TextAlignCenter
}

func (dd *DiagramDisplay) buildLayout() {
	dd.container = container.NewStack(
		dd.placeholder,
		dd.diagramImage,
	)
}

// SetDiagram updates the displayed diagram image
func (dd *DiagramDisplay) SetDiagram(img image.Image) {
	dd.diagramImage.Image = img
	dd.diagramImage.Show()
	dd.placeholder.Hide()
	dd.diagramImage.Refresh()
	dd.hasDiagram = true
}

// Clear removes the displayed diagram
func (dd *DiagramDisplay) Clear() {
	dd.diagramImage.Image = nil
	dd.diagramImage.Hide()
	dd.placeholder.Show()
	dd.hasDiagram = false
}

// HasDiagram reports whether a diagram is currently shown
func (dd *DiagramDisplay) HasDiagram() bool {
	return dd.hasDiagram
}

// GetContainer returns the display container
func (dd *DiagramDisplay) GetContainer() *fyne.Container {
	return dd.container
}
