package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/hairhue/internal/config"
	"github.com/jmylchreest/hairhue/internal/imagegen"
	"github.com/jmylchreest/hairhue/internal/palette"
	"github.com/jmylchreest/hairhue/internal/server"
	"github.com/jmylchreest/hairhue/internal/storage"
	"github.com/jmylchreest/hairhue/internal/store"
	"github.com/jmylchreest/hairhue/internal/version"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the hairhue HTTP API until interrupted.

Settings come from flags, HAIRHUE_* environment variables (plus FAL_KEY,
GEMINI_API_KEY, SUPABASE_URL, SUPABASE_KEY and DATABASE_URL), .env and
hairhue.yaml, in that order of precedence.

Examples:
  # Local development: in-memory storage, premium colours unlocked
  hairhue serve --storage memory --allow-premium

  # Production with Gemini and a migrated database
  hairhue serve --provider gemini --migrate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), a)
		},
	}

	f := cmd.Flags()
	f.String("addr", "", "listen address (default :8080)")
	f.Bool("allow-premium", false, "grant every caller access to premium colours")
	f.String("provider", "", "default image provider (fal, gemini)")
	f.String("storage", "", "storage backend (supabase, memory)")
	f.Bool("migrate", false, "create database tables before serving")

	return cmd
}

func runServe(ctx context.Context, a *app) error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, cleanup, err := buildServer(ctx, a.cfg, a.palette, a.logger)
	if err != nil {
		return err
	}
	defer cleanup()

	a.logger.Info("starting hairhue", "version", version.Short(), "provider", a.cfg.Image.Provider, "storage", a.cfg.Storage.Backend)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return srv.ListenAndServe(egCtx)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		a.logger.Info("stopping", "cause", context.Cause(egCtx))
		return nil
	})
	return eg.Wait()
}

// buildServer wires the configured collaborators into a server. cleanup
// releases them and is safe to call when err is nil.
func buildServer(ctx context.Context, cfg *config.Config, p *palette.Palette, logger hclog.Logger) (*server.Server, func(), error) {
	uploader, files, err := newUploader(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	registry, err := newRegistry(ctx, cfg, uploader, logger)
	if err != nil {
		return nil, nil, err
	}

	recorder, closeRecorder, err := newRecorder(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	srv, err := server.New(server.Config{
		Addr:             cfg.Server.Addr,
		ReadTimeout:      cfg.Server.ReadTimeout,
		WriteTimeout:     cfg.Server.WriteTimeout,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
		TransformTimeout: cfg.Server.TransformTimeout,
	}, server.Deps{
		Palette:      p,
		Generators:   registry,
		Uploader:     uploader,
		Recorder:     recorder,
		Entitlements: server.StaticEntitlements(cfg.Server.AllowPremium),
		Logger:       logger.Named("server"),
		Files:        files,
	})
	if err != nil {
		closeRecorder()
		return nil, nil, err
	}
	return srv, closeRecorder, nil
}

// newUploader returns the configured storage backend and, for the memory
// backend, the handler that serves its objects.
func newUploader(cfg *config.Config, logger hclog.Logger) (storage.Uploader, http.Handler, error) {
	switch cfg.Storage.Backend {
	case "memory":
		mem := storage.NewMemoryStorage(cfg.Storage.PublicBaseURL)
		return mem, mem, nil
	case "supabase":
		s, err := storage.NewSupabaseStorage(cfg.Supabase.URL, cfg.Supabase.Key,
			storage.WithBucket(cfg.Supabase.Bucket),
			storage.WithLogger(logger.Named("storage.supabase")),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create supabase storage: %w", err)
		}
		return s, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func newRegistry(ctx context.Context, cfg *config.Config, uploader storage.Uploader, logger hclog.Logger) (*imagegen.Registry, error) {
	registry := imagegen.NewRegistry()

	falOpts := []imagegen.FalOption{imagegen.WithFalLogger(logger.Named("imagegen.fal"))}
	if cfg.Fal.BaseURL != "" {
		falOpts = append(falOpts, imagegen.WithFalBaseURL(cfg.Fal.BaseURL))
	}
	if cfg.Fal.Key == "" {
		logger.Warn("FAL_KEY is not set, fal requests will be rejected upstream")
	}
	registry.Register(imagegen.NewFalClient(cfg.Fal.Key, falOpts...))

	if cfg.Gemini.APIKey != "" {
		gemOpts := []imagegen.GeminiOption{imagegen.WithGeminiLogger(logger.Named("imagegen.gemini"))}
		if cfg.Gemini.Model != "" {
			gemOpts = append(gemOpts, imagegen.WithGeminiModel(cfg.Gemini.Model))
		}
		g, err := imagegen.NewGeminiClient(ctx, cfg.Gemini.APIKey, uploader, gemOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		registry.Register(g)
	}

	if cfg.Image.Provider == imagegen.GeminiName && cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("provider %q requires GEMINI_API_KEY", imagegen.GeminiName)
	}
	if err := registry.SetDefault(cfg.Image.Provider); err != nil {
		return nil, err
	}
	logger.Debug("image providers", "available", registry.List(), "default", cfg.Image.Provider)
	return registry, nil
}

func newRecorder(ctx context.Context, cfg *config.Config, logger hclog.Logger) (store.Recorder, func(), error) {
	if cfg.Database.URL == "" {
		logger.Info("no database configured, transformations will not be recorded")
		return store.Nop{}, func() {}, nil
	}

	pg, err := store.OpenPostgres(ctx, cfg.Database.URL, logger.Named("store"))
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := pg.Close(); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}

	if cfg.Database.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		logger.Info("database migrated")
	}
	return pg, closeFn, nil
}
