package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Host             string
	Port             string
	RedisAddr        string
	TaxRate          float64
	LivenessEndpoint string
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. An empty RedisAddr selects the in-memory occupancy store.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Host:             getenv("HOST", "localhost"),
		Port:             getenv("PORT", "8092"),
		RedisAddr:        getenv("REDIS_ADDR", ""),
		TaxRate:          getfloat("TAX_RATE", 0.15),
		LivenessEndpoint: getenv("LIVENESS_ENDPOINT", "/liveness"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}

func getfloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}

	return f
}
