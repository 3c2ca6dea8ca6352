package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alorle/nexum-portal/internal/adapter/driven"
	"github.com/alorle/nexum-portal/internal/adapter/driver"
	"github.com/alorle/nexum-portal/internal/application"
	"github.com/alorle/nexum-portal/internal/catalog"
	port "github.com/alorle/nexum-portal/internal/port/driven"
	"github.com/alorle/nexum-portal/internal/schedule"
)

type config struct {
	Port                string
	LogLevel            slog.Level
	FeedURL             string // empty selects the fetcher default
	FeedTimeout         time.Duration
	FeedLocation        *time.Location
	CatalogFile         string
	ProbeTimeout        time.Duration
	ProbeInterval       time.Duration
	ProbeWindow         time.Duration
	NewsRefreshInterval time.Duration
	RotationInterval    time.Duration
}

func loadConfig() config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logLevel := slog.LevelInfo
	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		switch strings.ToUpper(logLevelStr) {
		case "DEBUG":
			logLevel = slog.LevelDebug
		case "INFO":
			logLevel = slog.LevelInfo
		case "WARN":
			logLevel = slog.LevelWarn
		case "ERROR":
			logLevel = slog.LevelError
		}
	}

	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		loc = time.UTC
	}
	if tz := os.Getenv("FEED_TIMEZONE"); tz != "" {
		if parsed, err := time.LoadLocation(tz); err == nil {
			loc = parsed
		}
	}

	intervals := application.DefaultPortalIntervals()

	return config{
		Port:                port,
		LogLevel:            logLevel,
		FeedURL:             os.Getenv("FEED_URL"),
		FeedTimeout:         positiveDurationEnv("FEED_TIMEOUT", 30*time.Second),
		FeedLocation:        loc,
		CatalogFile:         os.Getenv("CATALOG_FILE"),
		ProbeTimeout:        positiveDurationEnv("PROBE_TIMEOUT", 15*time.Second),
		ProbeInterval:       durationEnv("PROBE_INTERVAL", 15*time.Minute),
		ProbeWindow:         positiveDurationEnv("PROBE_WINDOW", 24*time.Hour),
		NewsRefreshInterval: positiveDurationEnv("NEWS_REFRESH_INTERVAL", intervals.NewsRefresh),
		RotationInterval:    positiveDurationEnv("ROTATION_INTERVAL", intervals.Rotation),
	}
}

// durationEnv parses a duration variable. Unset or malformed values yield def;
// an explicit "0" is kept.
func durationEnv(key string, def time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= 0 {
			return d
		}
	}
	return def
}

// positiveDurationEnv is durationEnv for values that cannot be zero, such as
// ticker periods and request timeouts.
func positiveDurationEnv(key string, def time.Duration) time.Duration {
	if d := durationEnv(key, def); d > 0 {
		return d
	}
	slog.Warn("ignoring non-positive duration", "key", key, "default", def)
	return def
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func main() {
	// A missing .env is fine: the environment may be set by the container.
	_ = godotenv.Load()

	cfg := loadConfig()

	// Create structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("starting nexum-portal",
		"port", cfg.Port,
		"feed_url", cfg.FeedURL,
		"feed_timezone", cfg.FeedLocation.String(),
		"catalog_file", cfg.CatalogFile,
		"log_level", cfg.LogLevel.String(),
		"probe_interval", cfg.ProbeInterval,
	)

	c, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	// Create driven adapters
	feed := driven.NewRSSFeedFetcher(cfg.FeedURL, &http.Client{Timeout: cfg.FeedTimeout})
	engines := driven.NewHLSEngineFactory(nil, logger)
	probeRepo := driven.NewProbeMemoryRepository()
	monitor := driven.NewHeadlessSurface(false)

	// Create application services
	newsService := application.NewNewsService(feed, cfg.FeedLocation, logger)
	channelService := application.NewChannelService(c)
	healthService := application.NewHealthService(feed)
	probeService := application.NewProbeService(
		c,
		probeRepo,
		engines,
		func() port.VideoSurface { return driven.NewHeadlessSurface(false) },
		logger,
		cfg.ProbeTimeout,
		cfg.ProbeWindow,
	)

	fullscreen := application.NewFullscreen(logger, monitor.FullscreenMethod())
	monitor.OnFullscreenChange(fullscreen.OnChange)

	portalService := application.NewPortalService(
		c,
		newsService,
		application.NewPlayer(engines, logger.With("component", "monitor")),
		monitor,
		fullscreen,
		application.PortalIntervals{
			NewsRefresh: cfg.NewsRefreshInterval,
			Rotation:    cfg.RotationInterval,
		},
		logger,
	)

	// Create HTTP handlers
	doc, err := driver.LoadOpenAPI()
	if err != nil {
		log.Fatalf("failed to load api document: %v", err)
	}

	apiHandler, err := driver.NewAPIHandler(driver.APIHandlers{
		News:     driver.NewNewsHTTPHandler(newsService),
		Channels: driver.NewChannelHTTPHandler(channelService, probeService),
		Sponsors: driver.NewSponsorHTTPHandler(channelService),
		Probes:   driver.NewProbeHTTPHandler(probeService),
		Portal:   driver.NewPortalHTTPHandler(portalService),
		Health:   driver.NewHealthHTTPHandler(healthService),
	}, doc)
	if err != nil {
		log.Fatalf("failed to create api handler: %v", err)
	}

	// Root router: API under /api/, metrics, SPA for everything else
	rootMux := http.NewServeMux()
	rootMux.Handle("/api/", apiHandler)
	rootMux.Handle("/metrics", promhttp.Handler())
	rootMux.Handle("/", newSPAHandler(logger))

	// Start background work
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := portalService.Start(ctx); err != nil {
		log.Fatalf("failed to start portal: %v", err)
	}

	var probeTask *schedule.Task
	if cfg.ProbeInterval > 0 {
		probeTask = schedule.New(cfg.ProbeInterval, func(ctx context.Context) {
			if err := probeService.ProbeAllChannels(ctx); err != nil {
				logger.Warn("probe cycle aborted", "error", err)
			}
		})
		probeTask.Start(ctx)
	}

	// Create HTTP server. Probes may hold a request for up to PROBE_TIMEOUT.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      rootMux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.ProbeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received, shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	stop()
	if probeTask != nil {
		probeTask.Stop()
	}
	portalService.Stop()

	logger.Info("server stopped")
}
