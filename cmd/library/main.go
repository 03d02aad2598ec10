package main

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/litvinov-da/library/config"
	"github.com/litvinov-da/library/data"
	_ "github.com/litvinov-da/library/docs"
	"github.com/litvinov-da/library/handler"
	"github.com/litvinov-da/library/internal/jsonlog"
	"github.com/litvinov-da/library/repository"
	"github.com/litvinov-da/library/repository/postgres"
	"github.com/litvinov-da/library/service"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

// @title  Library API
// @version 1.0.0
// @description Admin API of the local library catalog.
// @BasePath /
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	level, err := jsonlog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger = jsonlog.New(os.Stdout, level)

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	if cfg.Database.AutoMigrate {
		version, err := postgres.Migrate(db)
		if err != nil {
			logger.PrintFatal(err, nil)
		}
		logger.PrintInfo("database migrations applied", map[string]string{
			"version": strconv.FormatInt(version, 10),
		})
	}

	// Other shared resources: waitgroup and permissions cache
	var wg sync.WaitGroup
	permissions := ttlcache.New(ttlcache.WithTTL[int64, data.Permissions](30 * time.Second))
	go permissions.Start()
	defer permissions.Stop()

	// Application layers
	repo := repository.New(db)
	service := service.New(cfg, &wg, logger, repo)
	handler, err := handler.New(cfg, logger, permissions, service)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
