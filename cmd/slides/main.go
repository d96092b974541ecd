package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unidoc/unioffice/common/license"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/config"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/slides"
)

// Generates the ten-slide integration deck.
func main() {
	ctx := context.Background()
	log := logger.NewDefault().WithComponent("slides")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	if key := os.Getenv("UNIDOC_LICENSE_API_KEY"); key != "" {
		if err := license.SetMeteredKey(key); err != nil {
			log.Fatal("Failed to set unioffice license key", err)
		}
	}

	fmt.Printf("MIDOR-ETHYDCO presentation generator %s\n", config.GetVersion())
	fmt.Println("Assembling slides...")

	deck, err := slides.NewBuilder(schema.LoadMetrics()).BuildDeck()
	if err != nil {
		log.Fatal("Deck assembly failed", err)
	}

	data, err := slides.NewWriter().Marshal(deck)
	if err != nil {
		log.Fatal("Presentation serialization failed", err)
	}

	path := filepath.Join(cfg.OutputDir, slides.PresentationFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatal("Failed to write presentation", err)
	}

	fmt.Printf("Wrote %s (%d slides, %d bytes)\n", path, len(deck.Slides), len(data))
	os.Exit(0)
}
