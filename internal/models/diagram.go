package models

import (
	"image"
	"sync"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

// Diagram is an immutable snapshot of one rendered comparison: the sheet
// it came from, the labels in effect, the computed regions, the layout and
// the rasterized preview image.
type Diagram struct {
	SheetName string
	Labels    []string
	Result    *venn.Result
	Layout    *venn.LayoutSpec
	Image     image.Image
}

// DiagramRepository keeps the latest rendered diagram for display. The
// renderer writes, the view reads; both may run off the UI goroutine.
type DiagramRepository struct {
	mu      sync.RWMutex
	current *Diagram
}

// NewDiagramRepository creates an empty diagram store
func NewDiagramRepository() *DiagramRepository {
	return &DiagramRepository{}
}

// Set stores the latest rendered diagram
func (dr *DiagramRepository) Set(d *Diagram) {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	dr.current = d
}

// Current returns the latest rendered diagram, nil when nothing has been
// rendered yet.
func (dr *DiagramRepository) Current() *Diagram {
	dr.mu.RLock()
	defer dr.mu.RUnlock()
	return dr.current
}

// Clear drops the stored diagram
func (dr *DiagramRepository) Clear() {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	dr.current = nil
}

// Shutdown releases the stored diagram
func (dr *DiagramRepository) Shutdown() {
	dr.Clear()
}
