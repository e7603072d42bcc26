package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"
)

const saverComponent = "Saver"

// SavedFiles lists the files one artifact produced on disk
type SavedFiles struct {
	PNGPath string
	CSVPath string
}

// Saver writes artifacts to the output directory. A comparison either
// produces both its files or neither; the partial file is removed when the
// second write fails.
type Saver struct {
	logger logger.Logger
}

// NewSaver creates a saver
func NewSaver(log logger.Logger) *Saver {
	return &Saver{logger: log}
}

// EnsureOutputDir creates the output directory beside the workbook and
// returns its path.
func (s *Saver) EnsureOutputDir(workbookPath, dirName string) (string, error) {
	dir := filepath.Join(filepath.Dir(workbookPath), dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	return dir, nil
}

// Save writes an artifact's PNG and CSV into dir using the shared stem
func (s *Saver) Save(artifact *Artifact, dir string, now time.Time) (*SavedFiles, error) {
	base := BaseName(artifact.SheetName, artifact.Labels, now)
	pngPath := filepath.Join(dir, base+".png")
	csvPath := filepath.Join(dir, base+".csv")

	if err := os.WriteFile(pngPath, artifact.PNG, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", pngPath, err)
	}

	if err := s.writeCSV(csvPath, artifact); err != nil {
		if rmErr := os.Remove(pngPath); rmErr != nil {
			s.logger.Warning(saverComponent, "could not remove partial output", map[string]interface{}{
				"path":  pngPath,
				"error": rmErr.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info(saverComponent, "artifact saved", map[string]interface{}{
		"sheet": artifact.SheetName,
		"png":   pngPath,
		"csv":   csvPath,
	})
	return &SavedFiles{PNGPath: pngPath, CSVPath: csvPath}, nil
}

func (s *Saver) writeCSV(path string, artifact *Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := workbook.WriteCSV(f, artifact.Result); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
