package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Interpreter
	Interpreter InterpreterConfig
	Grammar     GrammarConfig
	Schedule    ScheduleConfig

	// Persistence
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type InterpreterConfig struct {
	AliasPrefix      string
	QueueCapacity    int
	Timezone         string
	SessionCacheSize int
	SessionTTL       time.Duration
}

// ProfileConfig is one normative profile; an empty list keeps the built-in profiles.
type ProfileConfig struct {
	ID              string   `mapstructure:"id"`
	Names           []string `mapstructure:"names"`
	StartOffsetDays int      `mapstructure:"start_offset_days"`
	EndOffsetDays   int      `mapstructure:"end_offset_days"`
}

type GrammarConfig struct {
	Profiles []ProfileConfig
}

type ScheduleConfig struct {
	// SeedFile is a YAML schedule loaded into every new session.
	SeedFile string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/schedule-interpreter/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/schedule-interpreter/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Interpreter
	cfg.Interpreter.AliasPrefix = v.GetString("interpreter.alias_prefix")
	cfg.Interpreter.QueueCapacity = v.GetInt("interpreter.queue_capacity")
	cfg.Interpreter.Timezone = v.GetString("interpreter.timezone")
	cfg.Interpreter.SessionCacheSize = v.GetInt("interpreter.session_cache_size")
	cfg.Interpreter.SessionTTL = v.GetDuration("interpreter.session_ttl")

	if err := v.UnmarshalKey("grammar.profiles", &cfg.Grammar.Profiles); err != nil {
		return nil, fmt.Errorf("error decoding grammar.profiles: %w", err)
	}
	cfg.Schedule.SeedFile = v.GetString("schedule.seed_file")

	// Persistence
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("interpreter.alias_prefix", "PR")
	v.SetDefault("interpreter.queue_capacity", 5)
	v.SetDefault("interpreter.timezone", "Europe/Zagreb")
	v.SetDefault("interpreter.session_cache_size", 1000)
	v.SetDefault("interpreter.session_ttl", "12h")

	v.SetDefault("google_calendar.calendar_id", "primary")
}

// Validate checks value ranges after defaults are applied.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", c.HTTPServer.Port)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return errors.New("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	if c.Interpreter.AliasPrefix == "" {
		return errors.New("interpreter.alias_prefix is required")
	}
	if c.Interpreter.QueueCapacity <= 0 {
		return fmt.Errorf("interpreter.queue_capacity must be positive, got %d", c.Interpreter.QueueCapacity)
	}
	if c.Interpreter.SessionCacheSize <= 0 {
		return fmt.Errorf("interpreter.session_cache_size must be positive, got %d", c.Interpreter.SessionCacheSize)
	}
	if c.Interpreter.SessionTTL <= 0 {
		return errors.New("interpreter.session_ttl must be positive")
	}

	seen := make(map[string]bool, len(c.Grammar.Profiles))
	for i, p := range c.Grammar.Profiles {
		if p.ID == "" {
			return fmt.Errorf("grammar.profiles[%d]: id is required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("grammar.profiles[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		if len(p.Names) == 0 {
			return fmt.Errorf("grammar.profiles[%d] %s: at least one name is required", i, p.ID)
		}
	}
	return nil
}
