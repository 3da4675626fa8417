// Package main provides the normalizer command that dumps the cleaned tables as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"bookstats/internal/config"
	"bookstats/internal/logger"
	"bookstats/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	outputPath := flag.String("output", "", "Path to output JSON file")
	flag.Parse()

	if *configPath == "" || *outputPath == "" {
		fmt.Println("Usage: normalizer -config <config.yaml> -output <normalized.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s\n", cfg)

	ds, err := pipeline.New(cfg, logger.NewLogger(cfg.Logging.Level)).Normalize(context.Background())
	if err != nil {
		log.Fatalf("Error normalizing: %v\n", err)
	}

	fmt.Printf("📊 Normalized: %d customers, %d books, %d orders\n",
		len(ds.Customers), len(ds.Books), len(ds.Orders))

	if mkdirErr := os.MkdirAll(filepath.Dir(*outputPath), 0755); mkdirErr != nil {
		log.Fatalf("Error creating directory: %v\n", mkdirErr)
	}

	jsonData, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling JSON: %v\n", err)
	}

	if err := os.WriteFile(*outputPath, jsonData, 0644); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}
