package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArtifact(t *testing.T) *Artifact {
	t.Helper()

	sets := []venn.NamedSet{
		venn.NewNamedSet("Tumor", []string{"TP53", "KRAS"}, false),
		venn.NewNamedSet("Control", []string{"KRAS", "BRCA1"}, false),
	}
	result, err := venn.ComputeRegions(sets, venn.DefaultOptions())
	require.NoError(t, err)

	return &Artifact{
		SheetName: "Liver",
		Labels:    []string{"Tumor", "Control"},
		Result:    result,
		PNG:       []byte("not a real png"),
	}
}

func TestEnsureOutputDir(t *testing.T) {
	base := t.TempDir()
	saver := NewSaver(logger.NewNop())

	dir, err := saver.EnsureOutputDir(filepath.Join(base, "study.xlsx"), "Venn_Outputs")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "Venn_Outputs"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	_, err = saver.EnsureOutputDir(filepath.Join(base, "study.xlsx"), "Venn_Outputs")
	assert.NoError(t, err)
}

func TestSaveWritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	saver := NewSaver(logger.NewNop())
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	saved, err := saver.Save(testArtifact(t), dir, at)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Liver__Tumor_vs_Control_20260314-092653.png"), saved.PNGPath)
	assert.Equal(t, filepath.Join(dir, "Liver__Tumor_vs_Control_20260314-092653.csv"), saved.CSVPath)

	png, err := os.ReadFile(saved.PNGPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("not a real png"), png)

	csv, err := os.ReadFile(saved.CSVPath)
	require.NoError(t, err)
	assert.Contains(t, string(csv), "Unique to Tumor")
	assert.Contains(t, string(csv), "Shared")
	assert.Contains(t, string(csv), "KRAS")
}

func TestSaveFailsIntoMissingDir(t *testing.T) {
	saver := NewSaver(logger.NewNop())

	_, err := saver.Save(testArtifact(t), filepath.Join(t.TempDir(), "missing"), time.Now())
	assert.Error(t, err)
}
