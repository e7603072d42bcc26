package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"gocv.io/x/gocv"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/opencv/conversion"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/opencv/memory"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/opencv/safe"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

const component = "Renderer"

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Renderer draws diagrams onto Mats. Stateless apart from its
// collaborators; safe for sequential reuse across sheets.
type Renderer struct {
	memoryManager *memory.Manager
	logger        logger.Logger
}

// NewRenderer creates a diagram renderer
func NewRenderer(memMgr *memory.Manager, log logger.Logger) *Renderer {
	return &Renderer{
		memoryManager: memMgr,
		logger:        log,
	}
}

// Render rasterizes a result onto a fresh tracked Mat. Translucent fills
// are composited per shape, then outlines, set labels, per-region counts
// and the title are drawn on top. The caller owns the returned Mat.
func (r *Renderer) Render(result *venn.Result, layout *venn.LayoutSpec, style Style) (*safe.Mat, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if result.N() != layout.N {
		return nil, fmt.Errorf("layout is for %d sets, result has %d", layout.N, result.N())
	}

	canvas := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(255, 255, 255, 255),
		style.Height, style.Width, gocv.MatTypeCV8UC3,
	)
	defer canvas.Close()
	if canvas.Empty() {
		return nil, fmt.Errorf("failed to allocate %dx%d canvas", style.Width, style.Height)
	}

	proj := newProjection(layout.Bounds, style.Width, style.Height)

	r.fillShapes(&canvas, layout, style, proj)
	r.outlineShapes(&canvas, layout, proj)
	r.drawSetLabels(&canvas, result, layout, style, proj)
	r.drawCounts(&canvas, result, layout, proj)
	r.drawTitle(&canvas, layout, style)

	diagram, err := safe.NewMatFromMat(canvas, r.memoryManager, "diagram")
	if err != nil {
		return nil, fmt.Errorf("failed to wrap diagram mat: %w", err)
	}

	r.logger.Debug(component, "diagram rendered", map[string]interface{}{
		"sets":   result.N(),
		"layout": layout.String(),
		"size":   fmt.Sprintf("%dx%d", style.Width, style.Height),
	})

	return diagram, nil
}

// RenderImage renders and converts to an image.Image for the GUI
func (r *Renderer) RenderImage(result *venn.Result, layout *venn.LayoutSpec, style Style) (image.Image, error) {
	mat, err := r.Render(result, layout, style)
	if err != nil {
		return nil, err
	}
	defer mat.Close()
	return conversion.MatToImage(mat)
}

// RenderPNG renders and encodes to PNG bytes for export
func (r *Renderer) RenderPNG(result *venn.Result, layout *venn.LayoutSpec, style Style) ([]byte, error) {
	mat, err := r.Render(result, layout, style)
	if err != nil {
		return nil, err
	}
	defer mat.Close()
	return conversion.EncodePNG(mat)
}

// fillShapes composites each shape's translucent fill, one overlay per
// shape so overlaps darken the way stacked alpha patches do.
func (r *Renderer) fillShapes(canvas *gocv.Mat, layout *venn.LayoutSpec, style Style, proj projection) {
	for i, shape := range layout.Shapes {
		overlay := canvas.Clone()
		r.drawShape(&overlay, shape, proj, style.ColorFor(i), -1)
		gocv.AddWeighted(overlay, style.Alpha, *canvas, 1-style.Alpha, 0, canvas)
		overlay.Close()
	}
}

func (r *Renderer) outlineShapes(canvas *gocv.Mat, layout *venn.LayoutSpec, proj projection) {
	for _, shape := range layout.Shapes {
		r.drawShape(canvas, shape, proj, black, 2)
	}
}

func (r *Renderer) drawShape(dst *gocv.Mat, shape venn.Shape, proj projection, c color.RGBA, thickness int) {
	center := proj.point(shape.Center)
	if shape.RadiusX == shape.RadiusY && shape.Rotation == 0 {
		gocv.Circle(dst, center, proj.length(shape.RadiusX), c, thickness)
		return
	}
	axes := image.Pt(proj.length(shape.RadiusX), proj.length(shape.RadiusY))
	// Pixel space is y-down, so the rotation flips sign.
	gocv.Ellipse(dst, center, axes, -shape.Rotation, 0, 360, c, thickness)
}

// drawSetLabels places each set's label outside its shape along the
// layout's label direction, scaled by the style's label height.
func (r *Renderer) drawSetLabels(canvas *gocv.Mat, result *venn.Result, layout *venn.LayoutSpec, style Style, proj projection) {
	labels := result.Labels()
	for i, shape := range layout.Shapes {
		radius := shape.RadiusX
		if shape.RadiusY > radius {
			radius = shape.RadiusY
		}
		dir := layout.LabelDirs[i]
		anchor := venn.Anchor{
			X: shape.Center.X + dir.X*radius*style.LabelHeight,
			Y: shape.Center.Y + dir.Y*radius*style.LabelHeight,
		}
		r.putTextCentered(canvas, labels[i], proj.point(anchor), proj.fontScale(0.28), 2)
	}
}

// drawCounts annotates each region anchor with its member count; the full
// intersection is emphasized with a heavier stroke.
func (r *Renderer) drawCounts(canvas *gocv.Mat, result *venn.Result, layout *venn.LayoutSpec, proj projection) {
	for _, region := range result.Regions() {
		anchor, ok := layout.CountAnchors[region.Combination]
		if !ok {
			continue
		}
		thickness := 2
		if region.Combination.Size() == layout.N {
			thickness = 3
		}
		r.putTextCentered(canvas, strconv.Itoa(region.Count()), proj.point(anchor), proj.fontScale(0.34), thickness)
	}
}

func (r *Renderer) drawTitle(canvas *gocv.Mat, layout *venn.LayoutSpec, style Style) {
	title := "Symmetric Venn Diagram (Counts)"
	if !layout.Exact {
		title = "Schematic Venn Diagram (Counts)"
	}
	scale := float64(style.Width) / 900.0
	r.putTextCentered(canvas, title, image.Pt(style.Width/2, int(34*scale)), 0.9*scale, 2)
}

func (r *Renderer) putTextCentered(dst *gocv.Mat, text string, at image.Point, scale float64, thickness int) {
	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, scale, thickness)
	origin := image.Pt(at.X-size.X/2, at.Y+size.Y/2)
	gocv.PutText(dst, text, origin, gocv.FontHersheySimplex, scale, black, thickness)
}

// projection maps layout coordinates (y up) onto pixel coordinates
// (y down) with uniform scale and centered fit.
type projection struct {
	scale      float64
	midX, midY float64
	cx, cy     float64
}

func newProjection(bounds venn.Rect, width, height int) projection {
	sx := float64(width) / (bounds.XMax - bounds.XMin)
	sy := float64(height) / (bounds.YMax - bounds.YMin)
	scale := sx
	if sy < scale {
		scale = sy
	}
	return projection{
		scale: scale,
		midX:  (bounds.XMin + bounds.XMax) / 2,
		midY:  (bounds.YMin + bounds.YMax) / 2,
		cx:    float64(width) / 2,
		cy:    float64(height) / 2,
	}
}

func (p projection) point(a venn.Anchor) image.Point {
	return image.Pt(
		int(p.cx+(a.X-p.midX)*p.scale),
		int(p.cy-(a.Y-p.midY)*p.scale),
	)
}

func (p projection) length(worldLength float64) int {
	return int(worldLength * p.scale)
}

// fontScale converts a desired glyph height in layout units into a
// Hershey font scale. Scale 1.0 draws roughly 22px tall glyphs.
func (p projection) fontScale(worldHeight float64) float64 {
	return worldHeight * p.scale / 22.0
}
