package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// CORS
	AllowedOrigins []string

	// Persisted application settings (mount points, review folder)
	SettingsFile string

	// Thumbnail cache directory
	ThumbnailDir string

	// Bookmark database path
	BookmarkDB string

	// Optional static UI directory
	WebDir string

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "5500"),
		Env:            getEnv("ENV", "development"),
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:5500")),
		SettingsFile:   getEnv("SETTINGS_FILE", "config.json"),
		ThumbnailDir:   getEnv("THUMBNAIL_DIR", "static/thumbnails"),
		BookmarkDB:     getEnv("BOOKMARK_DB", "bookmarks.db"),
		WebDir:         getEnv("WEB_DIR", "web"),
		LogLevel:       getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	// Simple split by comma
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if start < i {
				result = append(result, s[start:i])
			}
			start = i + 1
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
