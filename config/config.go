package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Snapshot cache TTL
const SNAPSHOT_CACHE_TTL_MINUTES = 30

// HTTP server
const HTTP_SERVER_ADDRESS = ":8080"
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Loader
const DATA_DIR = "data"
const LOADER_MAX_CONCURRENCY = 4
const LOADER_BATCH_PAUSE_MILLIS = 100
const HTTP_SOURCE_TIMEOUT_SECONDS = 10

// Dataset refresher, 0 disables the periodic job
const DATASET_REFRESHER_SCHEDULE_MINUTES = 0

// Per-source settings file
const SOURCES_CONFIG_FILE = "sources.yaml"

// Config holds the runtime settings of the dashboard service. Defaults come
// from the constants above and may be overridden by the environment.
type Config struct {
	Env string

	HTTPAddress     string
	ShutdownTimeout time.Duration

	DataDir       string
	SourceBaseURL string
	SourceTimeout time.Duration
	SourcesFile   string

	MaxConcurrency int
	BatchPause     time.Duration

	RefreshInterval time.Duration

	RedisEnabled  bool
	RedisAddress  string
	RedisPassword string
	RedisDB       int
	SnapshotTTL   time.Duration
}

// Load reads the .env file, if any, and returns the populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Env: getEnv("DASHBOARD_ENV", "dev"),

		HTTPAddress:     getEnv("HTTP_ADDRESS", HTTP_SERVER_ADDRESS),
		ShutdownTimeout: time.Duration(getEnvInt("HTTP_SHUTDOWN_TIMEOUT_SECONDS", HTTP_SHUTDOWN_TIMEOUT_SECONDS)) * time.Second,

		DataDir:       getEnv("DATA_DIR", filepath.Join(BaseDir(), DATA_DIR)),
		SourceBaseURL: getEnv("SOURCE_BASE_URL", ""),
		SourceTimeout: time.Duration(getEnvInt("SOURCE_TIMEOUT_SECONDS", HTTP_SOURCE_TIMEOUT_SECONDS)) * time.Second,
		SourcesFile:   getEnv("SOURCES_FILE", ""),

		MaxConcurrency: getEnvInt("LOADER_MAX_CONCURRENCY", LOADER_MAX_CONCURRENCY),
		BatchPause:     time.Duration(getEnvInt("LOADER_BATCH_PAUSE_MS", LOADER_BATCH_PAUSE_MILLIS)) * time.Millisecond,

		RefreshInterval: time.Duration(getEnvInt("REFRESH_INTERVAL_MINUTES", DATASET_REFRESHER_SCHEDULE_MINUTES)) * time.Minute,

		RedisEnabled:  getEnvBool("REDIS_ENABLED", false),
		RedisAddress:  getEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS),
		RedisPassword: getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:       getEnvInt("REDIS_DB", REDIS_DB),
		SnapshotTTL:   time.Duration(getEnvInt("SNAPSHOT_CACHE_TTL_MINUTES", SNAPSHOT_CACHE_TTL_MINUTES)) * time.Minute,
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
