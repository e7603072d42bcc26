package venn

import (
	"fmt"
	"math"
)

// LayoutPolicy selects how set counts above three are handled.
type LayoutPolicy string

const (
	// LayoutExact allows only the exact symmetric templates (N = 2 or 3).
	LayoutExact LayoutPolicy = "exact"
	// LayoutApproximate falls back to a schematic ellipse template for
	// four to six sets. The schematic is not area-proportional and does
	// not place every region geometrically exactly.
	LayoutApproximate LayoutPolicy = "approximate"
	// LayoutReject refuses set counts above three.
	LayoutReject LayoutPolicy = "reject"
)

// ParseLayoutPolicy validates a policy name from configuration
func ParseLayoutPolicy(name string) (LayoutPolicy, error) {
	switch LayoutPolicy(name) {
	case LayoutExact, LayoutApproximate, LayoutReject:
		return LayoutPolicy(name), nil
	default:
		return "", NewConfigurationError("layout_policy", name, "must be exact, approximate or reject")
	}
}

// ShapeKind identifies the geometric primitive of a layout.
type ShapeKind string

const (
	ShapeCircle  ShapeKind = "circle"
	ShapeEllipse ShapeKind = "ellipse"
)

// Anchor is a point in the layout's abstract coordinate system (y up).
type Anchor struct {
	X float64
	Y float64
}

// Shape is one circle or ellipse of the diagram.
type Shape struct {
	Center   Anchor
	RadiusX  float64
	RadiusY  float64
	Rotation float64 // degrees, counter-clockwise
}

// Rect is an axis-aligned bounding box in layout coordinates.
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// LayoutSpec is a fixed, data-independent geometric template for an N-set
// diagram: one shape per set, a direction for each set label, and an anchor
// for each region's count annotation. Counts never change the geometry.
type LayoutSpec struct {
	N            int
	Kind         ShapeKind
	Exact        bool
	Shapes       []Shape
	LabelDirs    []Anchor // unit vectors pointing away from the diagram
	CountAnchors map[Combination]Anchor
	Bounds       Rect
}

// MaxLayoutSets is the largest set count any template covers.
const MaxLayoutSets = 6

// AssignLayout returns the template for n sets under the given policy.
// Two and three sets use the exact symmetric templates; four to six sets
// are served by the schematic ellipse template only when the policy is
// approximate. Pure function of its arguments.
func AssignLayout(n int, policy LayoutPolicy) (*LayoutSpec, error) {
	switch {
	case n < 2:
		return nil, NewConfigurationError("sets", n, "a diagram needs at least two sets")
	case n == 2:
		return twoCircleLayout(), nil
	case n == 3:
		return threeCircleLayout(), nil
	case n <= MaxLayoutSets:
		if policy != LayoutApproximate {
			return nil, &UnsupportedLayoutError{N: n, Policy: policy}
		}
		return ellipseLayout(n), nil
	default:
		return nil, &UnsupportedLayoutError{N: n, Policy: policy}
	}
}

// twoCircleLayout reproduces the classic two-circle template: radius 1.5,
// centers offset to ±0.9 on the x axis. The overlap width is cosmetic,
// not proportional to the data.
func twoCircleLayout() *LayoutSpec {
	const r = 1.5
	const offset = 0.9

	return &LayoutSpec{
		N:     2,
		Kind:  ShapeCircle,
		Exact: true,
		Shapes: []Shape{
			{Center: Anchor{X: -offset}, RadiusX: r, RadiusY: r},
			{Center: Anchor{X: offset}, RadiusX: r, RadiusY: r},
		},
		LabelDirs: []Anchor{{Y: 1}, {Y: 1}},
		CountAnchors: map[Combination]Anchor{
			0b01: {X: -1.3},
			0b10: {X: 1.3},
			0b11: {},
		},
		Bounds: Rect{XMin: -3, XMax: 3, YMin: -2.5, YMax: 2.5},
	}
}

// threeCircleLayout places three equal circles 120° apart around a common
// centroid, the standard non-proportional three-set template.
func threeCircleLayout() *LayoutSpec {
	const r = 1.4
	const d = 0.95

	spec := &LayoutSpec{
		N:            3,
		Kind:         ShapeCircle,
		Exact:        true,
		Shapes:       make([]Shape, 3),
		LabelDirs:    make([]Anchor, 3),
		CountAnchors: make(map[Combination]Anchor, 7),
		Bounds:       Rect{XMin: -3, XMax: 3, YMin: -2.9, YMax: 2.9},
	}

	centers := make([]Anchor, 3)
	for i := 0; i < 3; i++ {
		angle := (90.0 + float64(i)*120.0) * math.Pi / 180.0
		centers[i] = Anchor{X: d * math.Cos(angle), Y: d * math.Sin(angle)}
		spec.Shapes[i] = Shape{Center: centers[i], RadiusX: r, RadiusY: r}
		spec.LabelDirs[i] = unit(centers[i])
	}

	for mask := Combination(1); mask < 1<<3; mask++ {
		spec.CountAnchors[mask] = countAnchor(mask, centers, 1.55, 2.2)
	}

	return spec
}

// ellipseLayout is the schematic fallback for four to six sets: rotated
// ellipses fanned around a shared center. Region anchors are best-effort;
// the drawing is explicitly non-exact and never area-proportional.
func ellipseLayout(n int) *LayoutSpec {
	const rx = 2.2
	const ry = 1.15
	const d = 0.25

	spec := &LayoutSpec{
		N:            n,
		Kind:         ShapeEllipse,
		Exact:        false,
		Shapes:       make([]Shape, n),
		LabelDirs:    make([]Anchor, n),
		CountAnchors: make(map[Combination]Anchor, (1<<uint(n))-1),
		Bounds:       Rect{XMin: -3.2, XMax: 3.2, YMin: -3.0, YMax: 3.0},
	}

	centers := make([]Anchor, n)
	for i := 0; i < n; i++ {
		angle := (90.0 + float64(i)*360.0/float64(n)) * math.Pi / 180.0
		centers[i] = Anchor{X: d * math.Cos(angle), Y: d * math.Sin(angle)}
		spec.Shapes[i] = Shape{
			Center:   centers[i],
			RadiusX:  rx,
			RadiusY:  ry,
			Rotation: float64(i) * 180.0 / float64(n),
		}
		spec.LabelDirs[i] = unit(centers[i])
	}

	outer := 1.9
	for mask := Combination(1); mask < 1<<uint(n); mask++ {
		mean := meanCenter(mask, centers)
		// Push small-popcount anchors outward, collapse deep overlaps
		// toward the middle.
		scale := outer * (1.0 - float64(mask.Size()-1)/float64(n-1))
		dir := unit(mean)
		spec.CountAnchors[mask] = Anchor{X: dir.X * scale, Y: dir.Y * scale}
	}

	return spec
}

// countAnchor places a region's count at the mean of its member centers,
// scaled outward so singles sit in their exclusive crescents and pairs in
// their lenses. The full intersection lands on the centroid.
func countAnchor(mask Combination, centers []Anchor, singleScale, pairScale float64) Anchor {
	mean := meanCenter(mask, centers)
	switch mask.Size() {
	case 1:
		return Anchor{X: mean.X * singleScale, Y: mean.Y * singleScale}
	case 2:
		return Anchor{X: mean.X * pairScale, Y: mean.Y * pairScale}
	default:
		return Anchor{}
	}
}

func meanCenter(mask Combination, centers []Anchor) Anchor {
	var sum Anchor
	count := 0
	for i, center := range centers {
		if mask.Contains(i) {
			sum.X += center.X
			sum.Y += center.Y
			count++
		}
	}
	if count == 0 {
		return Anchor{}
	}
	return Anchor{X: sum.X / float64(count), Y: sum.Y / float64(count)}
}

func unit(a Anchor) Anchor {
	norm := math.Hypot(a.X, a.Y)
	if norm == 0 {
		return Anchor{Y: 1}
	}
	return Anchor{X: a.X / norm, Y: a.Y / norm}
}

// String describes the layout for logs
func (ls *LayoutSpec) String() string {
	kind := string(ls.Kind)
	if !ls.Exact {
		kind += " (schematic)"
	}
	return fmt.Sprintf("%d-set %s layout", ls.N, kind)
}
