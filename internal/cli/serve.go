package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aumai/openjudge/internal/analyze"
	"github.com/aumai/openjudge/internal/httpserver"
	"github.com/aumai/openjudge/internal/model"
	"github.com/aumai/openjudge/internal/statute"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveHost   string
	servePort   int
	noCache     bool
	noRateLimit bool
	cacheTTL    time.Duration
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the openjudge HTTP API server",
	Long: `Serve exposes the statute lookup and case analysis operations over
HTTP:
  GET  /health
  POST /v1/analyze                      {"case_description": "..."}
  GET  /v1/sections/{code}
  GET  /v1/sections/{code}/{number}
  GET  /v1/mappings/{number}

Example:
  openjudge serve
  openjudge serve --host 0.0.0.0 --port 8080
  openjudge serve --no-cache --no-rate-limit`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "host to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "port to serve on")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis response cache")
	serveCmd.Flags().BoolVar(&noRateLimit, "no-rate-limit", false, "disable per-client rate limiting")
	serveCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 10*time.Minute, "analysis response cache TTL")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("\nDISCLAIMER: %s\n\n", model.Disclaimer)

	cfg := model.DefaultConfig()
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Cache.Enabled = !noCache
	cfg.Cache.TTL = cacheTTL
	cfg.RateLimiting.Enabled = !noRateLimit
	cfg.Output.Verbose = verbose

	store, err := statute.New()
	if err != nil {
		return fmt.Errorf("load statute tables: %w", err)
	}
	analyzer := analyze.NewAnalyzerWithStore(store)

	handler := httpserver.New(cfg, store, analyzer)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
