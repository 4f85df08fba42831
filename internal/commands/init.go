package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coinfolio-dev/coinfolio/internal/assets"
	"github.com/coinfolio-dev/coinfolio/internal/config"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new coinfolio project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}
}

func runInit(dir string) error {
	cfg := config.Default()

	// Create directory structure.
	dirs := []string{
		cfg.Import.Dir,
		filepath.Join(cfg.Import.Dir, "processed"),
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write coinfolio.yaml.
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the asset catalog.
	catalog := assets.NewCatalog(assets.DefaultAssets())
	if err := catalog.Save(filepath.Join(dir, cfg.Portfolio.AssetCatalog)); err != nil {
		return fmt.Errorf("writing asset catalog: %w", err)
	}

	// Write the default holdings dataset.
	if err := writeDefaultHoldings(filepath.Join(dir, cfg.Portfolio.DefaultHoldings)); err != nil {
		return fmt.Errorf("writing default holdings: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, cfg.Import.Dir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Printf("Initialized coinfolio project at %s\n", dir)
	return nil
}
