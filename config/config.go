package config

import (
	"log"
	"os"
	"strconv"
)

// Config is the full server configuration, read from the environment
// (godotenv loads .env first in main).
type Config struct {
	Addr string
	Port string

	// RedisURL empty means presence/cache features are disabled.
	RedisURL string

	MaxPlayers     int
	MaxUsernameLen int

	// RNGSeed pins deck shuffles and starting-seat picks. Testing only;
	// 0 means crypto-seeded.
	RNGSeed int64

	// TurnTimeoutSeconds is parsed and carried but not acted on: per-turn
	// timeouts are an open point in the game rules. 0 disables.
	TurnTimeoutSeconds int
}

func Load() Config {
	cfg := Config{
		Addr:               getEnv("FAROL_ADDR", "0.0.0.0"),
		Port:               getEnv("PORT", "8080"),
		RedisURL:           os.Getenv("REDIS_URL"),
		MaxPlayers:         getEnvInt("FAROL_MAX_PLAYERS", 8),
		MaxUsernameLen:     getEnvInt("FAROL_MAX_USERNAME_LEN", 20),
		RNGSeed:            int64(getEnvInt("FAROL_RNG_SEED", 0)),
		TurnTimeoutSeconds: getEnvInt("FAROL_TURN_TIMEOUT_SECONDS", 0),
	}
	if cfg.RNGSeed != 0 {
		log.Printf("[CONFIG] WARNING: fixed RNG seed %d set, deals are predictable", cfg.RNGSeed)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[CONFIG] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
