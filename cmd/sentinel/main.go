package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"RiskSentinel/internal/analyzer"
	"RiskSentinel/internal/calculator"
	"RiskSentinel/internal/collector"
	"RiskSentinel/internal/config"
	"RiskSentinel/internal/logger"
	"RiskSentinel/internal/notifier"
	"RiskSentinel/internal/risk"
	"RiskSentinel/internal/scheduler"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		bootLog := logger.New(logger.Config{Level: "info"})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)
	log.Info().Str("config", cfgPath).Msg("RiskSentinel starting")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "mock" {
		fetcher = &collector.MockFetcher{Price: 100}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.DataSource.RequestsPerSecond)
	}
	log.Info().Str("source", fetcher.Name()).Str("benchmark", cfg.DataSource.Benchmark).Msg("data source ready")

	col := collector.NewCollector(fetcher, cfg.DataSource.HistoryDays, log)

	var records analyzer.RecordSource
	if cfg.Portfolio.MetricsFile != "" {
		records = analyzer.FileRecords(cfg.Portfolio.MetricsFile)
	}
	an := analyzer.New(
		col,
		risk.NewBuilder(cfg.Descriptions, log),
		calculator.NewEngine(cfg.Analytics.PeriodsPerYear, cfg.Analytics.RiskFreeRate),
		analyzer.Options{
			Securities:    cfg.Portfolio.Securities,
			Benchmark:     cfg.DataSource.Benchmark,
			Catalog:       cfg.Catalog.Catalog,
			Records:       records,
			DeriveMetrics: cfg.Portfolio.DeriveMetrics,
			Inflation:     cfg.Inflation,
		},
		log,
	)

	out := notifier.Multi{notifier.NewLogNotifier(log)}
	if cfg.Log.Pretty {
		out = append(out, &notifier.TextNotifier{Out: os.Stdout})
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, an, out, log)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()

	if cfg.Schedule.RunOnStart {
		log.Info().Msg("run_on_start enabled, executing refresh now")
		sched.RunAsync()
	}

	log.Info().Str("cron", cfg.Schedule.RefreshCron).Msg("RiskSentinel is running, press Ctrl+C to stop")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	sched.Stop()
	log.Info().Msg("RiskSentinel stopped")
}
