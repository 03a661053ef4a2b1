package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Config holds the application configuration.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	Observability ObservabilityConfig `yaml:"observability"`
	Tournament    TournamentConfig    `yaml:"tournament"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// ObservabilityConfig holds configuration for observability components.
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// TournamentConfig holds tournament-wide settings: the Discord server the bot
// serves, the team roster, and protocol timing.
type TournamentConfig struct {
	GuildID              sharedtypes.GuildID   `yaml:"guild_id"`
	Timezone             string                `yaml:"timezone"`
	OrganizerRoleID      sharedtypes.RoleID    `yaml:"organizer_role_id"`
	NegotiationTTL       time.Duration         `yaml:"negotiation_ttl"`
	ControlRetentionDays int                   `yaml:"control_retention_days"`
	MatchCategoryID      sharedtypes.ChannelID `yaml:"match_category_id"`
	ArchiveCategoryID    sharedtypes.ChannelID `yaml:"archive_category_id"`
	PublicChannelID      sharedtypes.ChannelID `yaml:"public_channel_id"`
	StreamerChannelID    sharedtypes.ChannelID `yaml:"streamer_channel_id"`
	Teams                []TeamConfig          `yaml:"teams"`
}

// TeamConfig declares one team of the tournament roster.
type TeamConfig struct {
	Name   string             `yaml:"name"`
	RoleID sharedtypes.RoleID `yaml:"role_id"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is missing. Env vars always win over
// file values.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN not set (config file or DATABASE_URL)")
	}
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS URL not set (config file or NATS_URL)")
	}
	if cfg.Tournament.GuildID == "" {
		return nil, fmt.Errorf("tournament guild ID not set (config file or GUILD_ID)")
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("GUILD_ID"); v != "" {
		cfg.Tournament.GuildID = sharedtypes.GuildID(v)
	}
	if v := os.Getenv("ORGANIZER_ROLE_ID"); v != "" {
		cfg.Tournament.OrganizerRoleID = sharedtypes.RoleID(v)
	}
	if v := os.Getenv("TOURNAMENT_TIMEZONE"); v != "" {
		cfg.Tournament.Timezone = v
	}
	if v := os.Getenv("NEGOTIATION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Tournament.NegotiationTTL = d
		}
	}
	if v := os.Getenv("CONTROL_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Tournament.ControlRetentionDays = n
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Tournament.Timezone == "" {
		cfg.Tournament.Timezone = "UTC"
	}
	if cfg.Tournament.NegotiationTTL <= 0 {
		cfg.Tournament.NegotiationTTL = 24 * time.Hour
	}
	if cfg.Tournament.ControlRetentionDays <= 0 {
		cfg.Tournament.ControlRetentionDays = 30
	}
}

// ToObsConfig maps the app config onto the observability config.
func ToObsConfig(appCfg *Config) observability.Config {
	return observability.Config{
		ServiceName:    "tourney-bot",
		Environment:    appCfg.Observability.Environment,
		MetricsAddress: appCfg.Observability.MetricsAddress,
	}
}
