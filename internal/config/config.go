package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	GinMode    string
	LogLevel   log.Level
	StaticDir  string
	ResumePath string
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Load reads the environment, after merging in a .env file when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	conf := &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv(gin.EnvGinMode, gin.DebugMode),
		LogLevel:   level,
		StaticDir:  getEnv("STATIC_DIR", "./static"),
		ResumePath: getEnv("RESUME_PATH", "./static/resume.pdf"),
	}

	switch conf.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("%s: unknown mode %q", gin.EnvGinMode, conf.GinMode)
	}

	return conf, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
