package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"skillra/vacancyworker/config"
	"skillra/vacancyworker/helpers"
	"skillra/vacancyworker/internal/crawl"
	"skillra/vacancyworker/internal/employer"
	"skillra/vacancyworker/logger"
	"skillra/vacancyworker/services/cache"
	"skillra/vacancyworker/services/notify"
	"skillra/vacancyworker/services/publisher"
	"skillra/vacancyworker/services/sink"
	"skillra/vacancyworker/services/worker"
)

const rateLimitBlockTime = 500 * time.Second

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Dur("crawl_interval", cfg.CrawlInterval).
		Int("areas", len(cfg.AreaIDs)).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	services, err := initializeServices(ctx, &cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	// Wire the crawl pipeline
	proxies := helpers.LoadProxies(cfg.ProxyFile)
	fetcher := helpers.NewFetcher(cfg.RequestTimeout, proxies).
		WithBlockCache(services.Cache, "hh_rate_limited", rateLimitBlockTime)
	enricher := employer.NewEnricher(cfg.VacancyHost, fetcher, services.Cache)
	controller := crawl.NewController(&cfg, fetcher, enricher)

	w := worker.New(controller, services.Sinks, services.Publisher, services.Notifier, cfg.CronSpec())

	if cfg.RunOnce {
		log.Info().Msg("Running a single crawl cycle")
		w.RunCycle(ctx)
		return
	}

	if err := w.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start worker")
	}

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	cancel()
	w.Stop()

	log.Info().Msg("Shutting down gracefully...")
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Sinks     []sink.RecordSink
	Publisher publisher.Publisher
	Notifier  notify.Notifier
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	for _, snk := range s.Sinks {
		snk.Close()
	}
	if s.Publisher != nil {
		s.Publisher.Close()
	}
}

// initializeServices initializes all configured services. CSV output
// is always on; memcache, Postgres, Redis and Telegram join in when
// their settings are present.
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	if cfg.MemcacheAddr != "" {
		services.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)
	} else {
		services.Cache = cache.NewMemoryService()
		logger.Info("Using in-process cache")
	}

	csvSink, err := sink.NewCSVSink(cfg.OutputPath)
	if err != nil {
		return nil, err
	}
	services.Sinks = append(services.Sinks, csvSink)
	logger.Info("Writing CSV output to %s", cfg.OutputPath)

	if cfg.PostgresURL != "" {
		pgSink, err := sink.NewPostgresSink(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Sinks = append(services.Sinks, pgSink)
		logger.Info("Connected to Postgres")
	}

	if cfg.RedisAddr != "" {
		services.Publisher = publisher.NewRedisPublisher(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamCount,
			cfg.RedisStreamMaxLength,
		)
		logger.Info("Publishing to Redis streams at %s", cfg.RedisAddr)
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return nil, err
		}
		services.Notifier = notifier
		logger.Info("Telegram notifications enabled")
	}

	return services, nil
}
