package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"streammax/config"
	"streammax/content"
	"streammax/db"
	"streammax/handlers"
	"streammax/services"
)

//go:embed static
var staticFiles embed.FS

var envFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "streammax",
		Short:         "StreamMax IPTV landing page server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	cmd.AddCommand(serveCmd(), catalogCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.GinMode == gin.DebugMode {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

// loadCatalog reads the content and checks it. With strict off a broken
// catalog is served anyway and only logged.
func loadCatalog(path string, strict bool, log *zap.Logger) (*content.Catalog, error) {
	catalog, err := content.Load(path)
	if err != nil {
		return nil, err
	}
	if err := content.Validate(catalog); err != nil {
		if strict {
			return nil, err
		}
		log.Warn("serving catalog with problems", zap.Error(err))
	}
	return catalog, nil
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	if !cfg.EnvFileLoaded {
		log.Info("no env file found, using process environment", zap.String("file", envFile))
	}
	if cfg.Session.Generated {
		log.Warn("SESSION_SECRET not set, sessions end when the server restarts")
	}

	features, err := config.LoadFeatures()
	if err != nil {
		return err
	}
	log.Info("features",
		zap.Bool("lead_email", features.LeadEmailEnabled),
		zap.Bool("lead_slack", features.LeadSlackEnabled),
		zap.Bool("strict_catalog", features.StrictCatalog),
		zap.Bool("json_api", features.JSONAPIEnabled),
	)

	catalog, err := loadCatalog(cfg.CatalogFile, features.StrictCatalog, log)
	if err != nil {
		return err
	}

	if err := db.InitDB(cfg.StateDBPath); err != nil {
		return err
	}
	defer db.Close()

	submitter, err := services.NewLeadSubmitter(cfg.Lead, features, log)
	if err != nil {
		return err
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	router := handlers.NewRouter(handlers.RouterConfig{
		Landing:       handlers.NewLanding(catalog, db.NewStateStore(db.GetDB(), cfg.Session.TTL), submitter, log),
		Features:      features,
		SessionSecret: []byte(cfg.Session.Secret),
		SessionTTL:    cfg.Session.TTL,
		SecureCookie:  cfg.Session.Secure,
		Static:        static,
		Log:           log,
	})

	srv := &http.Server{Addr: cfg.Port, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	// let best-effort notifications finish
	submitter.Wait()
	return nil
}
