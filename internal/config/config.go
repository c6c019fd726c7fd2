// Package config provides Viper-based configuration loading for paperdoll.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides; "database.host"
// is overridden by PAPERDOLL_DATABASE_HOST.
const EnvPrefix = "PAPERDOLL"

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// KeyPrefix namespaces every key the repository writes.
	KeyPrefix string `mapstructure:"key_prefix"`
}

// StorageConfig selects where saves live.
type StorageConfig struct {
	// Backend is one of "memory", "postgres", "redis".
	Backend string `mapstructure:"backend"`
}

// APIConfig holds REST listener settings.
type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// RateLimitRPS is the sustained per-client request rate; 0 disables limiting.
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the "host:port" listen address.
func (a APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// InventoryConfig sizes the three collections.
type InventoryConfig struct {
	EquippedSize    int `mapstructure:"equipped_size"`
	InventorySize   int `mapstructure:"inventory_size"`
	RowWidth        int `mapstructure:"row_width"`
	WardrobeMinRows int `mapstructure:"wardrobe_min_rows"`
}

// InteractionConfig holds the drag start distances in pixels.
type InteractionConfig struct {
	MouseThresholdPx float64 `mapstructure:"mouse_threshold_px"`
	TouchThresholdPx float64 `mapstructure:"touch_threshold_px"`
}

// ContentConfig locates the content files.
type ContentConfig struct {
	ItemsDir         string `mapstructure:"items_dir"`
	LoadoutFile      string `mapstructure:"loadout_file"`
	PresentationFile string `mapstructure:"presentation_file"`
	ScriptsDir       string `mapstructure:"scripts_dir"`
}

// ScriptingConfig bounds the reaction scripts.
type ScriptingConfig struct {
	// InstructionLimit is the opcode budget per hook call; 0 uses the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// SessionConfig bounds how long an unused save stays open in the server.
type SessionConfig struct {
	// IdleTimeout is how long a session may go unused before it is saved
	// and closed; 0 keeps sessions open until shutdown.
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Storage     StorageConfig     `mapstructure:"storage"`
	API         APIConfig         `mapstructure:"api"`
	Inventory   InventoryConfig   `mapstructure:"inventory"`
	Interaction InteractionConfig `mapstructure:"interaction"`
	Content     ContentConfig     `mapstructure:"content"`
	Scripting   ScriptingConfig   `mapstructure:"scripting"`
	Sessions    SessionConfig     `mapstructure:"sessions"`
}

// Validate checks all configuration invariants. Database and Redis settings
// are only checked when their backend is selected.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	add := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	add(validateLogging(c.Logging))
	add(validateStorage(c.Storage))
	switch c.Storage.Backend {
	case BackendPostgres:
		add(validateDatabase(c.Database))
	case BackendRedis:
		add(validateRedis(c.Redis))
	}
	add(validateAPI(c.API))
	add(validateInventory(c.Inventory))
	add(validateInteraction(c.Interaction))
	add(validateContent(c.Content))
	add(validateSessions(c.Sessions))
	if c.Scripting.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func joined(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.New(strings.Join(errs, "; "))
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	return joined(errs)
}

func validateStorage(s StorageConfig) error {
	switch s.Backend {
	case BackendMemory, BackendPostgres, BackendRedis:
		return nil
	}
	return fmt.Errorf("storage.backend must be one of [memory, postgres, redis], got %q", s.Backend)
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	return joined(errs)
}

func validateRedis(r RedisConfig) error {
	var errs []string
	if r.Addr == "" {
		errs = append(errs, "redis.addr must not be empty")
	}
	if r.DB < 0 {
		errs = append(errs, fmt.Sprintf("redis.db must be >= 0, got %d", r.DB))
	}
	return joined(errs)
}

func validateAPI(a APIConfig) error {
	var errs []string
	if a.Port < 1 || a.Port > 65535 {
		errs = append(errs, fmt.Sprintf("api.port must be 1-65535, got %d", a.Port))
	}
	if a.RateLimitRPS < 0 {
		errs = append(errs, "api.rate_limit_rps must not be negative")
	}
	if a.RateLimitRPS > 0 && a.RateLimitBurst < 1 {
		errs = append(errs, fmt.Sprintf("api.rate_limit_burst must be >= 1 when limiting, got %d", a.RateLimitBurst))
	}
	if a.ReadTimeout < 0 {
		errs = append(errs, "api.read_timeout must not be negative")
	}
	if a.WriteTimeout < 0 {
		errs = append(errs, "api.write_timeout must not be negative")
	}
	return joined(errs)
}

func validateInventory(i InventoryConfig) error {
	var errs []string
	for _, f := range []struct {
		name string
		v    int
	}{
		{"equipped_size", i.EquippedSize},
		{"inventory_size", i.InventorySize},
		{"row_width", i.RowWidth},
		{"wardrobe_min_rows", i.WardrobeMinRows},
	} {
		if f.v < 1 {
			errs = append(errs, fmt.Sprintf("inventory.%s must be >= 1, got %d", f.name, f.v))
		}
	}
	return joined(errs)
}

func validateInteraction(i InteractionConfig) error {
	var errs []string
	if i.MouseThresholdPx < 0 {
		errs = append(errs, "interaction.mouse_threshold_px must not be negative")
	}
	if i.TouchThresholdPx < 0 {
		errs = append(errs, "interaction.touch_threshold_px must not be negative")
	}
	return joined(errs)
}

func validateContent(c ContentConfig) error {
	if c.ItemsDir == "" {
		return errors.New("content.items_dir must not be empty")
	}
	return nil
}

func validateSessions(s SessionConfig) error {
	var errs []string
	if s.IdleTimeout < 0 {
		errs = append(errs, "sessions.idle_timeout must not be negative")
	}
	if s.IdleTimeout > 0 && s.SweepInterval <= 0 {
		errs = append(errs, "sessions.sweep_interval must be positive when idle_timeout is set")
	}
	return joined(errs)
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with the defaults and environment
// overrides installed, ready for a config file or bound flags.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "paperdoll")
	v.SetDefault("database.password", "paperdoll")
	v.SetDefault("database.name", "paperdoll")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "paperdoll:")

	v.SetDefault("storage.backend", BackendMemory)

	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.rate_limit_rps", 20)
	v.SetDefault("api.rate_limit_burst", 40)
	v.SetDefault("api.read_timeout", "10s")
	v.SetDefault("api.write_timeout", "10s")

	v.SetDefault("inventory.equipped_size", 10)
	v.SetDefault("inventory.inventory_size", 20)
	v.SetDefault("inventory.row_width", 4)
	v.SetDefault("inventory.wardrobe_min_rows", 3)

	v.SetDefault("interaction.mouse_threshold_px", 3)
	v.SetDefault("interaction.touch_threshold_px", 10)

	v.SetDefault("content.items_dir", "content/items")
	v.SetDefault("content.loadout_file", "content/loadout.yaml")
	v.SetDefault("content.presentation_file", "content/presentation.yaml")
	v.SetDefault("content.scripts_dir", "content/scripts")

	v.SetDefault("scripting.instruction_limit", 100000)

	v.SetDefault("sessions.idle_timeout", "30m")
	v.SetDefault("sessions.sweep_interval", "1m")
}
