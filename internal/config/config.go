package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	CEPBaseURL  string
	HTTPTimeout time.Duration

	// Arquivo local que faz as vezes do key-value storage do dispositivo.
	SessionFile string

	// Usados apenas pelo stubapi.
	JWTSecret  string
	ServerPort string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080/api"),
		CEPBaseURL:  getEnv("CEP_BASE_URL", "https://viacep.com.br/ws"),
		HTTPTimeout: getDuration("HTTP_TIMEOUT", 15*time.Second),
		SessionFile: getEnv("SESSION_FILE", defaultSessionFile()),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".agenda", "session.json")
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
