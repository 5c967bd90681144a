package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         string
	Env          string
	StoreBackend string
	DBPath       string
	StoreDir     string
	DateLayout   string
}

var AppConfig *Config

// Store backends selectable through STORE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Host:         GetEnv("HOST", "127.0.0.1"),
		Port:         GetEnv("PORT", "3000"),
		Env:          GetEnv("ENV", "development"),
		StoreBackend: GetEnv("STORE_BACKEND", BackendSQLite),
		DBPath:       GetEnv("DB_PATH", "./data/pocket-notes.db"),
		StoreDir:     GetEnv("STORE_DIR", "./data/records"),
		DateLayout:   GetEnv("DATE_LAYOUT", "1/2/2006"),
	}

	switch AppConfig.StoreBackend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		log.Fatalf("STORE_BACKEND must be one of sqlite, file, memory (got %q)", AppConfig.StoreBackend)
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
