package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds process configuration. Domain settings live in the config document.
type Config struct {
	BotToken      string
	DataDir       string
	LogLevel      string
	PollTimeout   time.Duration
	Storage       string
	DatabaseURL   string
	MigrationsDir string
	AdminIDs      []int64
}

// Load reads configuration from the environment, .env and an optional bot.yaml
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("bot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POLL_TIMEOUT", 10*time.Second)
	v.SetDefault("STORAGE", StorageFile)
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	for _, key := range []string{"BOT_TOKEN", "DATABASE_URL", "ADMIN_IDS"} {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read bot.yaml: %w", err)
		}
	}

	adminIDs, err := parseIDs(v.GetString("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:      strings.TrimSpace(v.GetString("BOT_TOKEN")),
		DataDir:       v.GetString("DATA_DIR"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		PollTimeout:   v.GetDuration("POLL_TIMEOUT"),
		Storage:       strings.ToLower(v.GetString("STORAGE")),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		MigrationsDir: v.GetString("MIGRATIONS_DIR"),
		AdminIDs:      adminIDs,
	}

	// Validate required fields
	switch cfg.Storage {
	case StorageFile:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for STORAGE=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}

	return cfg, nil
}

// ResolveToken picks the bot credential: the environment wins over the config
// document, and the document placeholder counts as unset.
func ResolveToken(env, document string) (string, error) {
	if token := strings.TrimSpace(env); token != "" {
		return token, nil
	}
	if token := strings.TrimSpace(document); token != "" && token != domain.TokenPlaceholder {
		return token, nil
	}
	return "", fmt.Errorf("BOT_TOKEN is required")
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_IDS entry %q: %w", field, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
