package main

import (
	"context"
	"errors"
	"log"
	"os"

	goflags "github.com/jessevdk/go-flags"

	"marketing-dashboard/config"
	"marketing-dashboard/di"
)

func main() {
	cfg := config.Load()

	opts, err := config.ParseOptions(os.Args[1:])
	if err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	opts.Apply(cfg)

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("[MAIN] Failed to initialize container: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("[MAIN] Loading datasets")
	result, err := container.DashboardService.LoadAll(ctx)
	if err != nil {
		log.Printf("[MAIN] Initial load failed: %v", err)
	} else {
		log.Printf("[MAIN] Initial load %s: %d files, %d errors", result.CycleID, len(result.Files), len(result.Errors))
	}

	container.DatasetRefresherService.StartPeriodicJob(ctx, cfg.RefreshInterval)

	log.Println("[MAIN] Starting server")
	container.DashboardHttpServer.Start()
}
