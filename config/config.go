package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables, with the defaults the dev client expects.
const (
	EnvAddr      = "ARENA_ADDR"
	EnvStaticDir = "ARENA_STATIC_DIR"
	EnvLogFile   = "ARENA_LOG_FILE"
	EnvLogLevel  = "ARENA_LOG_LEVEL"
)

type Config struct {
	Addr      string
	StaticDir string
	LogFile   string
	LogLevel  string
}

// Load reads an optional .env file and assembles the process config. A
// missing .env is fine; deployments set real environment variables.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Addr:      getEnv(EnvAddr, ":3000"),
		StaticDir: getEnv(EnvStaticDir, "web"),
		LogFile:   getEnv(EnvLogFile, "arena.log"),
		LogLevel:  getEnv(EnvLogLevel, "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
