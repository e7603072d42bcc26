package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the current status message and sheet position
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	sheetLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	bar := &StatusBar{}
	bar.createComponents()
	bar.buildLayout()
	return bar
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.sheetLabel = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil,
		nil,
		sb.statusLabel,
		sb.sheetLabel,
	)
}

// SetStatus updates the status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetSheetPosition updates the sheet cursor display
func (sb *StatusBar) SetSheetPosition(index, total int, name string) {
	if total == 0 {
		sb.sheetLabel.SetText("")
		return
	}
	sb.sheetLabel.SetText(fmt.Sprintf("Sheet %d/%d: %s", index+1, total, name))
}

// Reset returns the status bar to its initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.sheetLabel.SetText("")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
