// Package main - Entry point for the moving-cost API server
package main

import (
	"flag"
	"fmt"
	"os"

	"moving-cost/api"
	"moving-cost/core/catalog"
	"moving-cost/core/inventory"
	"moving-cost/core/pricing"
	"moving-cost/core/rates"
	"moving-cost/internal/config"
	"moving-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "Server address (overrides config)")
	cfgFile := flag.String("config", "", "Config file path")
	tariffFile := flag.String("tariff", "", "Tariff HCL file (overrides config)")
	flag.Parse()

	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	tariffPath := cfg.Tariff.Path
	if *tariffFile != "" {
		tariffPath = *tariffFile
	}
	table, err := rates.LoadOrDefault(tariffPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tariff: %v\n", err)
		os.Exit(1)
	}

	cat := catalog.Standard()
	resolver := catalog.NewResolver(cat)
	aggregator := inventory.NewAggregator(resolver)
	engine := pricing.NewEngine(table, aggregator, cfg.Tariff.Currency)

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	server := api.NewServer(engine, cat, version, table.Version)

	fmt.Printf("moving-cost server v%s (tariff %s)\n", version, table.Version)
	fmt.Printf("  API: http://localhost%s\n", listenAddr)
	fmt.Println()

	if err := server.ListenAndServe(listenAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
