package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string
}

// Load reads configuration from the environment. DATABASE_URL is optional;
// without it the server keeps runs in memory.
func Load() Config {
	cfg := Config{Port: "8080"}
	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	return cfg
}
