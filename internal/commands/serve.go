package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contafacil-dev/contafacil/internal/config"
	"github.com/contafacil-dev/contafacil/internal/handler"
	"github.com/contafacil-dev/contafacil/internal/journal"
	"github.com/contafacil-dev/contafacil/internal/logging"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bookkeeping engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadOrDefault(configPath)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Server.LogMode)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			registry := cfg.Registry()
			svc := journal.NewService(journal.NewStore(), registry)
			h := handler.New(registry, svc, cfg.Fiscal.Year, logger)

			router := mux.NewRouter()
			h.RegisterRoutes(router)

			srv := &http.Server{
				Addr:         cfg.Server.Listen,
				Handler:      router,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
			}

			logger.Info("listening",
				zap.String("addr", cfg.Server.Listen),
				zap.Int("entities", len(cfg.Entities)),
				zap.Int("fiscal_year", cfg.Fiscal.Year))
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "contafacil.yaml", "path to configuration file")
	return cmd
}

// loadOrDefault reads the config file, falling back to the seeded
// defaults when none exists.
func loadOrDefault(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}
