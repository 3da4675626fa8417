// Package main provides the dashboard command that runs the analytics pipeline once.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"bookstats/internal/config"
	"bookstats/internal/logger"
	"bookstats/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (defaults read users.csv, books.yaml, orders.parquet)")
	logLevel := flag.String("log-level", "", "Override logging.level (debug, info, warn, error)")
	flag.Parse()

	log := logger.NewLogger("info")

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Error(fmt.Sprintf("❌ Failed to load config: %v", err))
			os.Exit(1)
		}

		cfg = loaded
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			log.Error(fmt.Sprintf("❌ Invalid configuration: %v", err))
			flag.PrintDefaults()
			os.Exit(1)
		}
	}

	log.SetLevel(cfg.Logging.Level)

	log.Info("🚀 Starting Book Store Analytics")
	log.Info(fmt.Sprintf("📍 Sources: %s", cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	result, err := pipeline.New(cfg, log).Run(ctx)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Pipeline failed: %v", err))
		stop()
		os.Exit(1)
	}

	r := result.Report

	log.Info("✨ Pipeline Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Orders: %d (%d unparseable timestamps, %d unparseable prices)\n",
		r.Summary.Orders, r.Summary.UnparseableTimestamps, r.Summary.UnparseablePrices)
	fmt.Printf("Revenue days: %d\n", len(r.DailyRevenue))
	fmt.Printf("Unique customers: %d\n", r.UniqueCustomers)
	fmt.Printf("Unique author sets: %d\n", r.UniqueAuthorSets)

	if r.PopularAuthor.Found {
		fmt.Printf("Most popular author: %s (%d copies)\n", r.PopularAuthor.Author, r.PopularAuthor.Quantity)
	}

	if r.TopCustomers.Found() {
		fmt.Printf("Top customer ids: %v (%s)\n", r.TopCustomers.IDs, r.TopCustomers.Total.StringFixed(2))
	}

	for _, a := range result.Artifacts {
		fmt.Printf("📄 %s\n", a)
	}

	fmt.Printf("Total Duration: %v\n", time.Since(start))
	fmt.Println("------------------------------------------------")
}
