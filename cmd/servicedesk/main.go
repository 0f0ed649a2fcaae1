package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bibagei/Hudoleev-kursovaya/internal/cli"
	"github.com/bibagei/Hudoleev-kursovaya/internal/config"
	"github.com/bibagei/Hudoleev-kursovaya/internal/orders"
	"github.com/bibagei/Hudoleev-kursovaya/internal/storage"
	"github.com/bibagei/Hudoleev-kursovaya/internal/users"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/logger"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	// Load application configurations.
	cfg := config.MustLoad()

	// Create root logger tagged with the application version.
	logger := logger.New(cfg).With("version", Version)
	defer func() {
		_ = logger.Sync()
	}()

	// Init the snapshot store both services persist through.
	store, err := storage.NewFileStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to init file store: %w", err)
	}

	// Init order service.
	orderService, err := orders.NewService(orders.NewRepository(), store, logger)
	if err != nil {
		return fmt.Errorf("failed to init order service: %w", err)
	}

	// Init user service.
	userService, err := users.NewService(users.NewRepository(), store, logger, cfg)
	if err != nil {
		return fmt.Errorf("failed to init user service: %w", err)
	}

	// Load snapshots, bootstrapping missing ones.
	if err = userService.Load(ctx); err != nil {
		return fmt.Errorf("failed to initialize users: %w", err)
	}
	if err = orderService.Load(ctx); err != nil {
		return fmt.Errorf("failed to initialize orders: %w", err)
	}

	// Build and run the interactive session.
	app, err := cli.New(os.Stdin, os.Stdout, orderService, userService, logger)
	if err != nil {
		return fmt.Errorf("failed to init cli: %w", err)
	}

	logger.Infof("service desk %v started", Version)
	return app.Run(ctx)
}
