package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prism-rei/vocatag/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port                        string
	DBPath                      string
	Catalog                     string
	MusicDir                    string
	VAName                      string
	MaxResults                  int
	CacheTTL                    time.Duration
	Language                    string
	TranslatedLyrics            bool
	IncludeFeaturedAlbumArtists bool
	IgnoreVideoTracks           bool
	LogLevel                    string
	LogFormat                   string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:                        getEnv("PORT", constants.DefaultPort),
		DBPath:                      getEnv("DB_PATH", constants.DefaultDBPath),
		Catalog:                     getEnv("CATALOG", constants.DefaultCatalog),
		MusicDir:                    getEnv("MUSIC_DIR", ""),
		VAName:                      getEnv("VA_NAME", constants.DefaultVAName),
		MaxResults:                  getEnvInt("MAX_RESULTS", constants.DefaultMaxResults),
		CacheTTL:                    getEnvDuration("CACHE_TTL", constants.DefaultCacheTTL),
		Language:                    getEnv("LANGUAGE", "English"),
		TranslatedLyrics:            getEnvBool("TRANSLATED_LYRICS", false),
		IncludeFeaturedAlbumArtists: getEnvBool("INCLUDE_FEATURED_ALBUM_ARTISTS", false),
		IgnoreVideoTracks:           getEnvBool("IGNORE_VIDEO_TRACKS", true),
		LogLevel:                    getEnv("LOG_LEVEL", "info"),
		LogFormat:                   getEnv("LOG_FORMAT", "text"),
	}
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty")
	}

	validCatalogs := map[string]bool{
		"vocadb":   true,
		"touhoudb": true,
		"utaitedb": true,
	}
	if !validCatalogs[strings.ToLower(c.Catalog)] {
		errors = append(errors, fmt.Sprintf("CATALOG must be one of: VocaDB, TouhouDB, UtaiteDB, got: %s", c.Catalog))
	}

	if c.VAName == "" {
		errors = append(errors, "VA_NAME cannot be empty")
	}

	validLanguages := map[string]bool{
		"english":  true,
		"japanese": true,
		"romaji":   true,
		"default":  true,
	}
	if !validLanguages[strings.ToLower(c.Language)] {
		errors = append(errors, fmt.Sprintf("LANGUAGE must be one of: English, Japanese, Romaji, Default, got: %s", c.Language))
	}

	if c.MaxResults < 1 {
		errors = append(errors, fmt.Sprintf("MAX_RESULTS must be at least 1, got: %d", c.MaxResults))
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
