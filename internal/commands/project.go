package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coinfolio-dev/coinfolio/internal/assets"
	"github.com/coinfolio-dev/coinfolio/internal/config"
	"github.com/coinfolio-dev/coinfolio/internal/holdings"
	"github.com/coinfolio-dev/coinfolio/internal/model"
)

// portfolioFile is where the committed portfolio snapshot is persisted
// between runs.
const portfolioFile = "portfolio.csv"

// project bundles everything a command needs from a coinfolio directory.
type project struct {
	Dir     string
	Config  *config.Config
	Catalog *assets.Catalog
	Store   *holdings.Store
}

// openProject loads the config, asset catalog, and persisted portfolio from
// dir. A directory that was never initialized still opens, with defaults.
func openProject(dir string) (*project, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}

	catalog, err := assets.Load(filepath.Join(dir, cfg.Portfolio.AssetCatalog))
	if err != nil {
		return nil, err
	}

	existing, err := loadPortfolio(dir)
	if err != nil {
		return nil, err
	}

	store := holdings.NewStore()
	store.Commit(existing)

	return &project{Dir: dir, Config: cfg, Catalog: catalog, Store: store}, nil
}

// SavePortfolio persists the current store snapshot to portfolio.csv.
func (p *project) SavePortfolio() error {
	out := holdings.ExportCSV(p.Store.Snapshot())
	path := filepath.Join(p.Dir, portfolioFile)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing portfolio: %w", err)
	}
	return nil
}

func loadPortfolio(dir string) ([]model.Holding, error) {
	f, err := os.Open(filepath.Join(dir, portfolioFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening portfolio: %w", err)
	}
	defer f.Close()

	return holdings.ReadCSV(f)
}

func writeDefaultHoldings(path string) error {
	data, err := json.MarshalIndent(holdings.FallbackHoldings(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling default holdings: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func workingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return dir, nil
}
