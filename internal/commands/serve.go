package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coinfolio-dev/coinfolio/internal/holdings"
	"github.com/coinfolio-dev/coinfolio/internal/importer"
	"github.com/coinfolio-dev/coinfolio/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workingDir()
			if err != nil {
				return err
			}
			return runServe(dir)
		},
	}
}

func runServe(dir string) error {
	proj, err := openProject(dir)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	// An empty store serves the default dataset so the UI always has
	// something to display.
	if proj.Store.Len() == 0 {
		defaults := holdings.LoadDefaults(filepath.Join(dir, proj.Config.Portfolio.DefaultHoldings))
		proj.Store.Commit(defaults)
	}

	im := importer.New(proj.Store, proj.Catalog, logger)
	s := server.New(im, logger, proj.Config.Server.CORSOrigin, proj.Config.Import.MaxFileSizeBytes())

	srv := &http.Server{Addr: ":" + proj.Config.Server.Port, Handler: s.R}
	go func() {
		logger.Info("http listening", zap.String("port", proj.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShut()
	_ = srv.Shutdown(ctxShut)

	if err := proj.SavePortfolio(); err != nil {
		logger.Error("saving portfolio", zap.Error(err))
	}
	logger.Info("shutdown complete")
	return nil
}
