// Command seed loads starter events and resources into the configured database.
//
// Without flags the embedded starter data is used. -events takes a JSON array
// and -resources takes a JSON array or a .csv file with a header row.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"gothamai/config"
	"gothamai/internal/domain"
	"gothamai/internal/seed"
	"gothamai/internal/services"
	"gothamai/internal/store"
)

func main() {
	eventsPath := flag.String("events", "", "JSON file with events (default: embedded starter events)")
	resourcesPath := flag.String("resources", "", "JSON or CSV file with resources (default: embedded starter resources)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	events, err := loadEvents(*eventsPath)
	if err != nil {
		logger.Error("load events", "error", err)
		os.Exit(1)
	}
	resources, err := loadResources(*resourcesPath)
	if err != nil {
		logger.Error("load resources", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("open store", "error", err)
		os.Exit(1)
	}
	defer st.Close(context.Background())

	seeder := &seed.Seeder{
		Events:    services.NewEventService(st.Events, logger, cfg.RequestTimeout),
		Resources: services.NewResourceService(st.Resources, logger, cfg.RequestTimeout),
		Logger:    logger,
	}
	res, err := seeder.Run(ctx, events, resources)
	if err != nil {
		logger.Error("seed failed", "error", err)
		st.Close(context.Background())
		os.Exit(1)
	}
	logger.Info("database seeded",
		slog.Int("events_created", res.EventsCreated),
		slog.Int("events_skipped", res.EventsSkipped),
		slog.Int("resources_created", res.ResourcesCreated),
		slog.Int("resources_skipped", res.ResourcesSkipped),
	)
}

func loadEvents(path string) ([]*domain.Event, error) {
	if path == "" {
		return seed.DefaultEvents()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.ReadEvents(f)
}

func loadResources(path string) ([]*domain.Resource, error) {
	if path == "" {
		return seed.DefaultResources()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.ReadResources(f, seed.FormatOf(path))
}
