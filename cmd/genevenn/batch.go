package main

import (
	"context"
	"fmt"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/config"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/opencv/memory"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/pipeline"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/render"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"
)

// staticStyle satisfies pipeline.StyleProvider with a fixed style, which
// is all a headless run needs.
type staticStyle struct {
	style render.Style
}

func (s staticStyle) Style() render.Style {
	return s.style
}

// batchRunner holds the headless pipeline for the batch subcommand
type batchRunner struct {
	reader      *workbook.Reader
	coordinator *pipeline.Coordinator
	memManager  *memory.Manager
	style       staticStyle
	dirName     string
	combined    bool
	logger      logger.Logger
}

func newBatchRunner(cfg *config.Config, log logger.Logger) (*batchRunner, error) {
	style, err := render.StyleFromConfig(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("invalid style configuration: %w", err)
	}

	memManager := memory.NewManager(log)
	renderer := render.NewRenderer(memManager, log)
	processor := pipeline.NewProcessor(renderer, cfg.EngineOptions(), cfg.Engine.CaseSensitive, cfg.Policy(), log)
	saver := pipeline.NewSaver(log)

	return &batchRunner{
		reader:      workbook.NewReader(log),
		coordinator: pipeline.NewCoordinator(processor, saver, log),
		memManager:  memManager,
		style:       staticStyle{style: style},
		dirName:     cfg.Output.DirName,
		combined:    cfg.Output.CombinedWorkbook,
		logger:      log,
	}, nil
}

// Process exports every sheet of one workbook
func (b *batchRunner) Process(ctx context.Context, path string) error {
	wb, err := b.reader.Open(path)
	if err != nil {
		return err
	}

	headers := func(sheet workbook.Sheet) []string {
		return nil
	}

	result, err := b.coordinator.RunBatch(ctx, wb, headers, b.style, b.dirName, b.combined)
	if err != nil {
		return err
	}

	for sheet, sheetErr := range result.Skipped {
		b.logger.Warning("Batch", "sheet not exported", map[string]interface{}{
			"workbook": path,
			"sheet":    sheet,
			"error":    sheetErr.Error(),
		})
	}
	if len(result.Processed) == 0 {
		return fmt.Errorf("no sheets exported from %s", path)
	}
	return nil
}

// Close releases pipeline resources
func (b *batchRunner) Close() {
	b.memManager.Shutdown()
}
