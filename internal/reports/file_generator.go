package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/charts"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/storage"
)

// FileGenerator orchestrates the full dashboard artifact set: the
// interactive HTML page, the fallback PNG charts, and the knowledge-base
// workbook.
type FileGenerator struct {
	chartGen    *charts.ChartGenerator
	htmlBuilder *HTMLBuilder
	pngRenderer *PNGRenderer
	excelWriter *ExcelWriter
	log         *logger.Logger
}

// NewFileGenerator creates a file generator with all sub-builders wired.
func NewFileGenerator() *FileGenerator {
	return &FileGenerator{
		chartGen:    charts.NewChartGenerator(),
		htmlBuilder: NewHTMLBuilder(),
		pngRenderer: NewPNGRenderer(),
		excelWriter: NewExcelWriter(),
		log:         logger.NewDefault().WithComponent("file-generator"),
	}
}

// GeneratedFiles holds every produced artifact in memory, keyed for
// storage by its canonical filename.
type GeneratedFiles struct {
	Dashboard []byte
	Workbook  []byte
	Charts    map[string][]byte // filename -> PNG bytes
}

// GenerateAll builds the complete artifact set.
func (fg *FileGenerator) GenerateAll(
	m *schema.MetricSet,
	entries []schema.KnowledgeEntry,
	definitions map[string]schema.DefinitionEntry) (*GeneratedFiles, error) {

	chartSet, err := fg.chartGen.GenerateAll(m)
	if err != nil {
		return nil, fmt.Errorf("chart generation: %w", err)
	}

	dashboard, err := fg.htmlBuilder.BuildDashboard(m, entries, definitions, chartSet)
	if err != nil {
		return nil, fmt.Errorf("dashboard build: %w", err)
	}

	pngs, err := fg.pngRenderer.RenderAll(m)
	if err != nil {
		return nil, fmt.Errorf("fallback charts: %w", err)
	}

	workbook, err := fg.excelWriter.BuildWorkbook(m, entries)
	if err != nil {
		return nil, fmt.Errorf("workbook build: %w", err)
	}

	files := &GeneratedFiles{
		Dashboard: []byte(dashboard),
		Workbook:  workbook,
		Charts:    pngs,
	}

	fg.log.Info("Generated all dashboard artifacts", map[string]interface{}{
		"dashboard_bytes": len(files.Dashboard),
		"workbook_bytes":  len(files.Workbook),
		"charts":          len(files.Charts),
	})
	return files, nil
}

// WriteLocal writes every artifact directly into dir using the
// canonical filenames.
func (fg *FileGenerator) WriteLocal(dir string, files *GeneratedFiles) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	artifacts := map[string][]byte{
		storage.DashboardFilename: files.Dashboard,
		WorkbookFilename:          files.Workbook,
	}
	for name, data := range files.Charts {
		artifacts[name] = data
	}

	for name, data := range artifacts {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fg.log.Info("Wrote artifact", map[string]interface{}{"path": path})
	}
	return nil
}

// Publish stores every artifact in the report folder for timestamp
// through the configured storage client.
func (fg *FileGenerator) Publish(ctx context.Context, client storage.StorageClient, files *GeneratedFiles, timestamp time.Time) error {
	if err := client.StoreFile(ctx, files.Dashboard, storage.DashboardFilename, timestamp); err != nil {
		return fmt.Errorf("failed to store dashboard: %w", err)
	}
	if err := client.StoreFile(ctx, files.Workbook, WorkbookFilename, timestamp); err != nil {
		return fmt.Errorf("failed to store workbook: %w", err)
	}
	for name, data := range files.Charts {
		if err := client.StoreFile(ctx, data, name, timestamp); err != nil {
			return fmt.Errorf("failed to store %s: %w", name, err)
		}
	}

	fg.log.Info("Published report artifacts", map[string]interface{}{
		"folder": storage.GenerateReportFolderPath(timestamp),
	})
	return nil
}
