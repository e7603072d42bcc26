package components

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// region member preview cap, matching the CSV which always holds the
// full membership
const regionPreviewLimit = 50

// RegionEntry is one region row for display
type RegionEntry struct {
	Title   string
	Members []string
}

// RegionList shows the membership of every diagram region
type RegionList struct {
	container *fyne.Container
	accordion *widget.Accordion
	header    *widget.Label
}

// NewRegionList creates a new region list component
func NewRegionList() *RegionList {
	list := &RegionList{}
	list.createComponents()
	list.buildLayout()
	return list
}

func (rl *RegionList) createComponents() {
	rl.header = widget.NewLabel("Regions")
	rl.header.TextStyle = fyne.TextStyle{Bold: true}
	rl.accordion = widget.NewAccordion()
}

func (rl *RegionList) buildLayout() {
	rl.container = container.NewBorder(
		rl.header,
		nil,
		nil,
		nil,
		container.NewVScroll(rl.accordion),
	)
}

// SetRegions replaces the listed regions
func (rl *RegionList) SetRegions(entries []RegionEntry) {
	items := make([]*widget.AccordionItem, 0, len(entries))
	for _, entry := range entries {
		title := fmt.Sprintf("%s (%d)", entry.Title, len(entry.Members))
		items = append(items, widget.NewAccordionItem(title, widget.NewLabel(previewText(entry.Members))))
	}

	rl.accordion.Items = items
	rl.accordion.Refresh()
}

// Clear removes all listed regions
func (rl *RegionList) Clear() {
	rl.accordion.Items = nil
	rl.accordion.Refresh()
}

// GetContainer returns the list container
func (rl *RegionList) GetContainer() *fyne.Container {
	return rl.container
}

func previewText(members []string) string {
	if len(members) == 0 {
		return "(empty)"
	}

	shown := members
	if len(shown) > regionPreviewLimit {
		shown = shown[:regionPreviewLimit]
	}

	text := strings.Join(shown, "\n")
	if len(members) > regionPreviewLimit {
		text += fmt.Sprintf("\n… and %d more", len(members)-regionPreviewLimit)
	}
	return text
}
