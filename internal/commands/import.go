package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coinfolio-dev/coinfolio/internal/importer"
	"github.com/coinfolio-dev/coinfolio/internal/importlog"
	"github.com/coinfolio-dev/coinfolio/internal/model"
)

func newImportCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Import exchange trade or holdings CSV files",
		Long: "Import one or more CSV files into the portfolio. With no arguments, " +
			"imports every .csv/.txt file in the configured import directory and " +
			"moves successfully imported files to import/processed/.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workingDir()
			if err != nil {
				return err
			}
			return runImport(dir, args, mode)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "merge mode: replace or accumulate (default from config)")

	return cmd
}

func runImport(dir string, files []string, modeFlag string) error {
	proj, err := openProject(dir)
	if err != nil {
		return err
	}

	if modeFlag == "" {
		modeFlag = proj.Config.Import.DefaultMode
	}
	mode, err := model.ParseMergeMode(modeFlag)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	importDir := filepath.Join(dir, proj.Config.Import.Dir)
	fromImportDir := len(files) == 0
	if fromImportDir {
		found, err := importer.Scan(importDir)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			fmt.Println("No files to import.")
			return nil
		}
		for _, f := range found {
			files = append(files, f.Path)
		}
	}

	im := importer.New(proj.Store, proj.Catalog, logger)
	maxBytes := proj.Config.Import.MaxFileSizeBytes()
	imported := 0

	for _, path := range files {
		name := filepath.Base(path)

		info, err := os.Stat(path)
		if err != nil {
			fmt.Printf("%s: %v\n", name, err)
			continue
		}
		if err := importer.ValidateFile(name, info.Size(), maxBytes); err != nil {
			fmt.Printf("%s: %v\n", name, err)
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("%s: %v\n", name, err)
			continue
		}
		res := im.Import(f, mode)
		f.Close()

		logErr := importlog.Append(dir, []importlog.Entry{{
			Timestamp: time.Now().UTC(),
			ImportID:  res.ImportID,
			Source:    name,
			Exchange:  res.DetectedExchange,
			Rows:      res.Rows,
			Holdings:  len(res.Holdings),
			Success:   res.Success,
		}})
		if logErr != nil {
			logger.Warn("import log append failed", zap.Error(logErr))
		}

		printResult(name, res)

		if res.Success {
			imported++
			if fromImportDir {
				if err := importer.MarkProcessed(importDir, name); err != nil {
					logger.Warn("marking processed failed", zap.Error(err))
				}
			}
		}
	}

	if imported == 0 {
		return fmt.Errorf("no files imported")
	}
	if err := proj.SavePortfolio(); err != nil {
		return err
	}

	fmt.Printf("Imported %d of %d file(s); portfolio has %d holding(s)\n", imported, len(files), proj.Store.Len())
	return nil
}

func printResult(name string, res model.ImportResult) {
	if res.Success {
		fmt.Printf("%s: imported %d holding(s) (exchange: %s)\n", name, len(res.Holdings), res.DetectedExchange)
	} else {
		fmt.Printf("%s: import failed (exchange: %s)\n", name, res.DetectedExchange)
	}
	for _, e := range res.Errors {
		fmt.Printf("  %s\n", e)
	}
}
