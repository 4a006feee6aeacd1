package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"marketing-dashboard/analyzer"
	"marketing-dashboard/api"
	"marketing-dashboard/config"
	"marketing-dashboard/dao/dataset"
	"marketing-dashboard/dao/redis"
	"marketing-dashboard/db"
	"marketing-dashboard/server"
	"marketing-dashboard/server/handlers"
	services "marketing-dashboard/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	Sources                 *config.SourcesConfig
	CSVSource               api.CSVSource
	RedisClient             db.RedisClient
	RedisSnapshotDao        *redis.RedisSnapshotDAO
	DatasetStore            *dataset.Store
	CSVLoaderService        *services.CSVLoaderService
	DashboardService        *services.DashboardService
	DashboardHandler        *handlers.DashboardHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	DashboardHttpServer     *server.DashboardHttpServer
	DatasetRefresherService *services.DatasetRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Printf("[Container] Initializing container - env: %s", cfg.Env)

	// Per-source settings
	sources := config.DefaultSourcesConfig()
	if cfg.SourcesFile != "" {
		loaded, err := config.LoadSources(cfg.SourcesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load sources file: %w", err)
		}
		sources = loaded
	}
	parsers := analyzer.NewParserSet(sources.DateParsers())

	// Initialize CSV source
	var csvSource api.CSVSource
	if cfg.SourceBaseURL != "" {
		log.Printf("[Container] Using HTTP csv source %s", cfg.SourceBaseURL)
		csvSource = api.NewHTTPCSVSource(api.NewHTTPClient(cfg.SourceBaseURL, cfg.SourceTimeout))
	} else {
		log.Printf("[Container] Using file csv source %s", cfg.DataDir)
		csvSource = api.NewFileCSVSource(cfg.DataDir)
	}

	// Initialize Redis snapshot cache, optional
	var redisClient db.RedisClient
	var snapshotDao *redis.RedisSnapshotDAO
	var cache services.SnapshotCache
	if cfg.RedisEnabled {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewGoRedisClient(context.Background(), redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		snapshotDao = redis.NewRedisSnapshotDAO(redisClient, cfg.SnapshotTTL)
		cache = snapshotDao
		log.Printf("[Container] Caching snapshots in redis at %s", cfg.RedisAddress)
	}

	// Initialize service layer
	store := dataset.NewStore()
	loader := services.NewCSVLoaderService(csvSource, cfg.MaxConcurrency, cfg.BatchPause)
	dashboardService := services.NewDashboardService(loader, store, parsers, cache)

	// Initialize handler, router and server
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(dashboardHandler, muxRouter)
	dashboardHttpServer := server.NewDashboardHttpServer(router, muxRouter, cfg.HTTPAddress, cfg.ShutdownTimeout)

	datasetRefresherService := services.NewDatasetRefresherService(dashboardService)

	return &Container{
		Config:                  cfg,
		Sources:                 sources,
		CSVSource:               csvSource,
		RedisClient:             redisClient,
		RedisSnapshotDao:        snapshotDao,
		DatasetStore:            store,
		CSVLoaderService:        loader,
		DashboardService:        dashboardService,
		DashboardHandler:        dashboardHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		DashboardHttpServer:     dashboardHttpServer,
		DatasetRefresherService: datasetRefresherService,
	}, nil
}
