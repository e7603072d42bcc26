package services

import (
	"context"
	"fmt"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/models"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/pipeline"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/render"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"
)

const diagramComponent = "DiagramService"

// DiagramService builds preview diagrams for the GUI. It shares the
// processor's set construction so previews and exports always agree.
type DiagramService struct {
	processor *pipeline.Processor
	renderer  *render.Renderer
	session   *models.SessionRepository
	diagrams  *models.DiagramRepository
	policy    venn.LayoutPolicy
	opts      venn.Options
	logger    logger.Logger
}

// NewDiagramService creates a new diagram service
func NewDiagramService(processor *pipeline.Processor, renderer *render.Renderer, session *models.SessionRepository, diagrams *models.DiagramRepository, opts venn.Options, policy venn.LayoutPolicy, log logger.Logger) *DiagramService {
	return &DiagramService{
		processor: processor,
		renderer:  renderer,
		session:   session,
		diagrams:  diagrams,
		policy:    policy,
		opts:      opts,
		logger:    log,
	}
}

// BuildPreview computes and renders the diagram for the session's current
// sheet, stores it in the diagram repository and returns it.
func (ds *DiagramService) BuildPreview(ctx context.Context) (*models.Diagram, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	sheet, ok := ds.session.CurrentSheet()
	if !ok {
		return nil, fmt.Errorf("no workbook loaded")
	}

	diagram, err := ds.buildSheet(sheet, ds.session.Labels(sheet.Name))
	if err != nil {
		return nil, err
	}

	ds.diagrams.Set(diagram)
	ds.logger.Debug(diagramComponent, "preview built", map[string]interface{}{
		"sheet":   diagram.SheetName,
		"sets":    diagram.Result.N(),
		"regions": len(diagram.Result.Regions()),
	})
	return diagram, nil
}

func (ds *DiagramService) buildSheet(sheet workbook.Sheet, labels []string) (*models.Diagram, error) {
	sets, used, err := ds.processor.BuildSets(sheet, labels)
	if err != nil {
		return nil, err
	}

	result, err := venn.ComputeRegions(sets, ds.opts)
	if err != nil {
		return nil, err
	}

	layout, err := venn.AssignLayout(result.N(), ds.policy)
	if err != nil {
		return nil, err
	}

	img, err := ds.renderer.RenderImage(result, layout, ds.session.Style())
	if err != nil {
		return nil, err
	}

	return &models.Diagram{
		SheetName: sheet.Name,
		Labels:    used,
		Result:    result,
		Layout:    layout,
		Image:     img,
	}, nil
}

// Cleanup releases the stored diagram
func (ds *DiagramService) Cleanup() {
	if ds.diagrams != nil {
		ds.diagrams.Shutdown()
	}
}
