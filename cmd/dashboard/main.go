package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/config"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/reports"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/storage"
)

// Generates the full dashboard artifact set into the output directory:
// the self-contained HTML page, fallback PNG charts, and the
// knowledge-base workbook.
func main() {
	ctx := context.Background()
	log := logger.NewDefault().WithComponent("dashboard")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	fmt.Printf("MIDOR-ETHYDCO dashboard generator %s\n", config.GetVersion())
	fmt.Println("Loading study data...")

	m := schema.LoadMetrics()
	entries := schema.LoadKnowledgeBase()
	definitions := schema.LoadDefinitions()

	if err := schema.ValidateKnowledgeBase(entries, definitions); err != nil {
		log.Fatal("Knowledge base validation failed", err)
	}
	fmt.Printf("Knowledge base: %d entries across %d categories\n",
		len(entries), len(schema.CategoryOrder))

	fmt.Println("Building charts and dashboard...")
	generator := reports.NewFileGenerator()
	files, err := generator.GenerateAll(m, entries, definitions)
	if err != nil {
		log.Fatal("Artifact generation failed", err)
	}

	if err := generator.WriteLocal(cfg.OutputDir, files); err != nil {
		log.Fatal("Failed to write artifacts", err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", storage.DashboardFilename, len(files.Dashboard))
	fmt.Printf("Wrote %s (%d bytes)\n", reports.WorkbookFilename, len(files.Workbook))
	for name, data := range files.Charts {
		fmt.Printf("Wrote %s (%d bytes)\n", name, len(data))
	}

	fmt.Println("Done.")
	os.Exit(0)
}
