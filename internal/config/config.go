package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config collects the environment-driven settings of the pipeline. All keys
// are optional; defaults match the validated baseline behavior.
type Config struct {
	OracleURL       string
	OracleKey       string
	BatchSize       int
	Concurrency     int
	DBPath          string
	DefaultCurrency string
	FuzzyThreshold  float64
	Debug           bool
}

// Load reads .env if present, then the GLABS_* environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		OracleURL:       getenv("GLABS_ORACLE_URL", ""),
		OracleKey:       getenv("GLABS_ORACLE_KEY", ""),
		BatchSize:       getint("GLABS_BATCH_SIZE", 25),
		Concurrency:     getint("GLABS_CONCURRENCY", 3),
		DBPath:          getenv("GLABS_DB_PATH", "data/glabs.db"),
		DefaultCurrency: getenv("GLABS_DEFAULT_CURRENCY", "AED"),
		FuzzyThreshold:  getfloat("GLABS_FUZZY_THRESHOLD", 0.75),
		Debug:           getenv("GLABS_DEBUG", "") != "",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getfloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}
