package pipeline

import (
	"fmt"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/render"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"
)

const processorComponent = "Processor"

// Artifact is one fully computed comparison ready to be written out
type Artifact struct {
	SheetName string
	Labels    []string
	Result    *venn.Result
	Layout    *venn.LayoutSpec
	PNG       []byte
}

// Processor runs the engine and renderer over one sheet at a time
type Processor struct {
	renderer      *render.Renderer
	engineOpts    venn.Options
	caseSensitive bool
	policy        venn.LayoutPolicy
	logger        logger.Logger
}

// NewProcessor creates a processor with the given engine settings
func NewProcessor(renderer *render.Renderer, opts venn.Options, caseSensitive bool, policy venn.LayoutPolicy, log logger.Logger) *Processor {
	return &Processor{
		renderer:      renderer,
		engineOpts:    opts,
		caseSensitive: caseSensitive,
		policy:        policy,
		logger:        log,
	}
}

// BuildSets converts a sheet's columns into named sets. Labels override
// the column headers positionally; blank labels keep the header. Columns
// beyond the engine's maximum set count are ignored.
func (p *Processor) BuildSets(sheet workbook.Sheet, labels []string) ([]venn.NamedSet, []string, error) {
	count := len(sheet.Columns)
	if p.engineOpts.MaxSets > 0 && count > p.engineOpts.MaxSets {
		p.logger.Warning(processorComponent, "ignoring extra columns", map[string]interface{}{
			"sheet":   sheet.Name,
			"columns": len(sheet.Columns),
			"used":    p.engineOpts.MaxSets,
		})
		count = p.engineOpts.MaxSets
	}

	sets := make([]venn.NamedSet, count)
	used := make([]string, count)
	for i := 0; i < count; i++ {
		label := sheet.Columns[i].Header
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		sets[i] = venn.NewNamedSet(label, sheet.Columns[i].Values, p.caseSensitive)
		used[i] = label
	}
	return sets, used, nil
}

// Process computes regions, assigns a layout and renders the PNG for one
// sheet.
func (p *Processor) Process(sheet workbook.Sheet, labels []string, style render.Style) (*Artifact, error) {
	sets, used, err := p.BuildSets(sheet, labels)
	if err != nil {
		return nil, err
	}

	result, err := venn.ComputeRegions(sets, p.engineOpts)
	if err != nil {
		return nil, fmt.Errorf("computing regions for sheet %q: %w", sheet.Name, err)
	}

	layout, err := venn.AssignLayout(result.N(), p.policy)
	if err != nil {
		return nil, fmt.Errorf("laying out sheet %q: %w", sheet.Name, err)
	}

	png, err := p.renderer.RenderPNG(result, layout, style)
	if err != nil {
		return nil, fmt.Errorf("rendering sheet %q: %w", sheet.Name, err)
	}

	p.logger.Info(processorComponent, "sheet processed", map[string]interface{}{
		"sheet":   sheet.Name,
		"sets":    result.N(),
		"regions": len(result.Regions()),
		"union":   result.UnionSize(),
	})

	return &Artifact{
		SheetName: sheet.Name,
		Labels:    used,
		Result:    result,
		Layout:    layout,
		PNG:       png,
	}, nil
}
