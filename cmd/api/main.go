package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	"github.com/BruksfildServices01/clinica-api/internal/config"
	dbpkg "github.com/BruksfildServices01/clinica-api/internal/db"
	photodomain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/infra/photostore"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
	"github.com/BruksfildServices01/clinica-api/internal/observability"
	"github.com/BruksfildServices01/clinica-api/internal/routes"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "api",
		Short: "API da clínica (pacientes, anotações, fotos e orçamentos)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe o servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o schema no banco e sai",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log, err := logger.New(cfg.LogMode)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := dbpkg.Open(cfg.DBDriver, cfg.DBUrl)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}
			log.Info("migrations applied", "driver", cfg.DBDriver)
			return nil
		},
	}
}

func newPhotoStore(cfg *config.Config, log *logger.Logger) (photodomain.Store, error) {
	switch cfg.PhotoStorage {
	case "s3":
		return photostore.NewS3Store(cfg.S3, log)
	case "local", "":
		return photostore.NewLocalStore(cfg.PhotoBaseDir)
	default:
		return nil, fmt.Errorf("PHOTO_STORAGE desconhecido: %q", cfg.PhotoStorage)
	}
}

func runServer() error {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	// --------------------------------------------------
	// Observabilidade
	// --------------------------------------------------
	flushSentry, err := observability.InitSentry(cfg)
	if err != nil {
		log.Warn("sentry disabled", "error", err)
		flushSentry = func() {}
	}
	defer flushSentry()

	shutdownTracing, err := observability.SetupTracing(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	// --------------------------------------------------
	// Infra
	// --------------------------------------------------
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	photos, err := newPhotoStore(cfg, log)
	if err != nil {
		return err
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	if cfg.LogMode == "production" || cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Photos: photos,
		Config: cfg,
		Log:    log,
		Audit:  dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "photo_storage", cfg.PhotoStorage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	// só depois do servidor parar: nenhum handler mais enfileira eventos
	dispatcher.Close()
	if err := shutdownTracing(ctx); err != nil {
		log.Warn("tracing shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("server stopped")
	return nil
}
