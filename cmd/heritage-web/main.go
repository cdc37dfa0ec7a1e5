// cmd/heritage-web serves shortest-path relationship queries over one
// loaded genealogy table.
//
// Startup sequence:
//  1. Load configuration from environment variables.
//  2. Ingest the relationship table (index + family graph, read-only
//     from then on).
//  3. Start the HTTP server: REST query API plus a WebSocket query
//     endpoint, behind auth and rate-limit middleware.
//  4. Optionally watch the table file and reload on change, notifying
//     connected WebSocket clients.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scrypster/heritage/internal/config"
	"github.com/scrypster/heritage/internal/ingest"
	"github.com/scrypster/heritage/internal/notify"
	"github.com/scrypster/heritage/internal/server"
	"github.com/scrypster/heritage/web/handlers"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("heritage-web: ")
	log.SetFlags(log.LstdFlags)

	datasetPath := flag.String("dataset", "", "Path to the relationship table (overrides HERITAGE_DATASET)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *datasetPath != "" {
		cfg.Dataset.Path = *datasetPath
	}
	if cfg.Dataset.Path == "" {
		log.Fatalf("no dataset configured: set HERITAGE_DATASET or pass -dataset")
	}

	opts := ingest.Options{}
	if cfg.Dataset.ManifestPath != "" {
		m, err := ingest.LoadManifest(cfg.Dataset.ManifestPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		opts = m.Options()
	}

	source, err := server.OpenDataset(cfg.Dataset.Path, opts)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, hub, err := server.Start(ctx, cfg, source)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("query API listening at http://%s (persons: %d, edges: %d)",
		addr, source.Dataset().Len(), source.Dataset().Graph().EdgeCount())

	if cfg.Dataset.WatchReload {
		watcher := notify.NewFileWatcher(cfg.Dataset.Path, func() {
			if err := source.Reload(); err != nil {
				log.Printf("reload failed, keeping previous dataset: %v", err)
				return
			}
			ds := source.Dataset()
			log.Printf("dataset reloaded (persons: %d, edges: %d)", ds.Len(), ds.Graph().EdgeCount())
			hub.Broadcast(handlers.ReloadEvent{
				Type:     "dataset_reloaded",
				Persons:  ds.Len(),
				LoadedAt: source.LoadedAt(),
			})
		})
		if err := watcher.Start(); err != nil {
			log.Printf("dataset watch disabled: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("shutting down")
	cancel()
	time.Sleep(200 * time.Millisecond) // let in-flight responses finish
}
