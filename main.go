package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cli/browser"
	"github.com/healthwrapped/data"
	"github.com/healthwrapped/downloader"
	"github.com/healthwrapped/models"
	"github.com/healthwrapped/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Config holds the application configuration
type Config struct {
	UpstreamURL string
	Port        string
	DemoPort    string
	LogDir      string
}

// loadConfig reads .env into the environment, then the environment into a
// Config. A missing .env is not fatal; the error is returned so it can be
// logged once the logger exists.
func loadConfig(envFiles ...string) (Config, error) {
	err := godotenv.Load(envFiles...)
	return Config{
		UpstreamURL: getenv("WRAPPED_UPSTREAM_URL", downloader.DefaultURL),
		Port:        getenv("WRAPPED_PORT", "8080"),
		DemoPort:    getenv("WRAPPED_DEMO_PORT", "8000"),
		LogDir:      getenv("WRAPPED_LOG_DIR", "logs"),
	}, err
}

func logEnvError(logger *zap.Logger, err error) {
	if err != nil {
		logger.Info("No .env file found, using environment", zap.Error(err))
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var (
	cfg    Config
	envErr error
	debug  bool

	openBrowser  bool
	snapshotPath string
	savePath     string
)

var rootCmd = &cobra.Command{
	Use:   "wrapped",
	Short: "Health Wrapped - your year in health, one slide at a time",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, envErr = loadConfig()
		// flags win over the environment
		if f := cmd.Flags().Lookup("upstream"); f != nil && f.Changed {
			cfg.UpstreamURL = f.Value.String()
		}
		if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
			if cmd.Name() == "demo" {
				cfg.DemoPort = f.Value.String()
			} else {
				cfg.Port = f.Value.String()
			}
		}
		if f := cmd.Flags().Lookup("log-dir"); f != nil && f.Changed {
			cfg.LogDir = f.Value.String()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Wrapped page",
	Long: `Serves the Wrapped page. The page shell loads instantly and pulls its
slides from the aggregation service once. If the service cannot be reached
the page keeps showing its loading indicator.`,
	RunE: runServe,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Serve a snapshot file as the aggregation service",
	Long: `Serves a WrappedData snapshot at /wrapped so the page can be developed
without the aggregation service. Without --snapshot the embedded sample is used.`,
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-dir", "", "Directory for app.log (env WRAPPED_LOG_DIR)")

	serveCmd.Flags().String("upstream", "", "Aggregation service URL (env WRAPPED_UPSTREAM_URL)")
	serveCmd.Flags().String("port", "", "Port to listen on (env WRAPPED_PORT)")
	serveCmd.Flags().BoolVar(&openBrowser, "open", false, "Open the page in the default browser")

	demoCmd.Flags().String("port", "", "Port to listen on (env WRAPPED_DEMO_PORT)")
	demoCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot JSON file to serve")
	demoCmd.Flags().StringVar(&savePath, "save", "", "Write the served snapshot to this path and exit")

	rootCmd.AddCommand(serveCmd, demoCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := server.NewLogger(cfg.LogDir, debug)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync()
	logEnvError(logger, envErr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := downloader.New(cfg.UpstreamURL, &http.Client{})
	srv := server.New(":"+cfg.Port, loader, logger)

	url := "http://localhost:" + cfg.Port
	logger.Info("Visit the page to see your Wrapped",
		zap.String("url", url),
		zap.String("upstream", cfg.UpstreamURL))

	if openBrowser {
		go func() {
			if err := browser.OpenURL(url); err != nil {
				logger.Warn("Failed to open browser", zap.Error(err))
			}
		}()
	}

	return srv.Serve(ctx)
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger, err := server.NewLogger(cfg.LogDir, debug)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync()
	logEnvError(logger, envErr)

	var snapshot *models.WrappedData
	if snapshotPath != "" {
		snapshot, err = models.LoadSnapshot(snapshotPath)
	} else {
		snapshot, err = data.Sample()
	}
	if err != nil {
		return err
	}

	if savePath != "" {
		if err := models.SaveSnapshot(savePath, snapshot); err != nil {
			return err
		}
		logger.Info("Snapshot saved", zap.String("path", savePath))
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewSnapshotServer("127.0.0.1:"+cfg.DemoPort, snapshot, logger)
	return srv.Serve(ctx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
