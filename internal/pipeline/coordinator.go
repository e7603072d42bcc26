package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/render"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"
)

const coordinatorComponent = "Coordinator"

// StyleProvider supplies the diagram style at processing time. The session
// repository satisfies it so GUI exports always use the latest edits.
type StyleProvider interface {
	Style() render.Style
}

// BatchResult summarizes one batch run
type BatchResult struct {
	Processed    []SavedFiles
	Skipped      map[string]error
	CombinedPath string
}

// Coordinator drives the processor and saver over whole workbooks
type Coordinator struct {
	processor *Processor
	saver     *Saver
	logger    logger.Logger
}

// NewCoordinator creates a coordinator
func NewCoordinator(processor *Processor, saver *Saver, log logger.Logger) *Coordinator {
	return &Coordinator{processor: processor, saver: saver, logger: log}
}

// ExportSheet processes and saves a single sheet, used by the GUI save
// action. The output directory is created beside the workbook.
func (c *Coordinator) ExportSheet(sheet workbook.Sheet, labels []string, style StyleProvider, workbookPath, dirName string) (*SavedFiles, error) {
	dir, err := c.saver.EnsureOutputDir(workbookPath, dirName)
	if err != nil {
		return nil, err
	}
	artifact, err := c.processor.Process(sheet, labels, style.Style())
	if err != nil {
		return nil, err
	}
	return c.saver.Save(artifact, dir, time.Now())
}

// RunBatch processes every usable sheet of a workbook, writing one PNG and
// CSV per sheet. Sheets that fail are recorded and skipped; a failure does
// not abort the run. When combined is set the per-sheet region tables are
// additionally collected into one workbook.
func (c *Coordinator) RunBatch(ctx context.Context, wb *workbook.Workbook, labelsFor func(workbook.Sheet) []string, style StyleProvider, dirName string, combined bool) (*BatchResult, error) {
	dir, err := c.saver.EnsureOutputDir(wb.Path, dirName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := &BatchResult{Skipped: make(map[string]error)}

	var combinedWB *workbook.CombinedWorkbook
	if combined {
		combinedWB, err = workbook.NewCombinedWorkbook()
		if err != nil {
			return nil, err
		}
		defer combinedWB.Close()
	}

	for _, sheet := range wb.Sheets {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		artifact, err := c.processor.Process(sheet, labelsFor(sheet), style.Style())
		if err != nil {
			c.logger.Warning(coordinatorComponent, "sheet skipped", map[string]interface{}{
				"sheet": sheet.Name,
				"error": err.Error(),
			})
			result.Skipped[sheet.Name] = err
			continue
		}

		saved, err := c.saver.Save(artifact, dir, now)
		if err != nil {
			result.Skipped[sheet.Name] = err
			continue
		}
		result.Processed = append(result.Processed, *saved)

		if combinedWB != nil {
			if err := combinedWB.AddSheet(sheet.Name, artifact.Result); err != nil {
				return result, fmt.Errorf("adding sheet %q to combined workbook: %w", sheet.Name, err)
			}
		}
	}

	if combinedWB != nil && len(result.Processed) > 0 {
		path := filepath.Join(dir, "venn_batch_results_"+Timestamp(now)+".xlsx")
		if err := combinedWB.SaveAs(path); err != nil {
			return result, fmt.Errorf("writing combined workbook: %w", err)
		}
		result.CombinedPath = path
	}

	c.logger.Info(coordinatorComponent, "batch complete", map[string]interface{}{
		"workbook":  wb.Path,
		"processed": len(result.Processed),
		"skipped":   len(result.Skipped),
		"combined":  result.CombinedPath,
	})
	return result, nil
}
