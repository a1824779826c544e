// Package config loads hairhue settings from flags, the environment, an
// optional hairhue.yaml and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every setting's environment variable.
	EnvPrefix = "HAIRHUE"

	// DefaultConfigFileName is searched for without extension.
	DefaultConfigFileName = "hairhue"
)

// Config is the full runtime configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
	Palette  PaletteConfig  `mapstructure:"palette"`
	Image    ImageConfig    `mapstructure:"image"`
	Fal      FalConfig      `mapstructure:"fal"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LogConfig configures the root logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr             string        `mapstructure:"addr"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
	TransformTimeout time.Duration `mapstructure:"transform_timeout"`
	// AllowPremium grants every caller access to premium colours.
	AllowPremium bool `mapstructure:"allow_premium"`
}

// PaletteConfig points at an alternative palette file. Empty uses the
// compiled-in palette.
type PaletteConfig struct {
	File string `mapstructure:"file"`
}

// ImageConfig selects the default image generator.
type ImageConfig struct {
	Provider string `mapstructure:"provider"`
}

type FalConfig struct {
	Key     string `mapstructure:"key"`
	BaseURL string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// StorageConfig selects where images are published.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	// PublicBaseURL prefixes object URLs for the memory backend.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type SupabaseConfig struct {
	URL    string `mapstructure:"url"`
	Key    string `mapstructure:"key"`
	Bucket string `mapstructure:"bucket"`
}

type DatabaseConfig struct {
	URL     string `mapstructure:"url"`
	Migrate bool   `mapstructure:"migrate"`
}

// Known provider and storage backend names.
var (
	Providers       = []string{"fal", "gemini"}
	StorageBackends = []string{"supabase", "memory"}
)

// envAliases are the conventional variable names each provider documents.
var envAliases = map[string]string{
	"fal.key":        "FAL_KEY",
	"gemini.api_key": "GEMINI_API_KEY",
	"supabase.url":   "SUPABASE_URL",
	"supabase.key":   "SUPABASE_KEY",
	"database.url":   "DATABASE_URL",
}

// flagKeys maps command-line flags to settings.
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"log-json":      "log.json",
	"addr":          "server.addr",
	"allow-premium": "server.allow_premium",
	"palette":       "palette.file",
	"provider":      "image.provider",
	"storage":       "storage.backend",
	"migrate":       "database.migrate",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 3*time.Minute)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.transform_timeout", 2*time.Minute)
	v.SetDefault("server.allow_premium", false)

	v.SetDefault("palette.file", "")
	v.SetDefault("image.provider", "fal")
	v.SetDefault("fal.key", "")
	v.SetDefault("fal.base_url", "https://fal.run")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash-image")

	v.SetDefault("storage.backend", "supabase")
	v.SetDefault("storage.public_base_url", "http://localhost:8080/files")
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.key", "")
	v.SetDefault("supabase.bucket", "hairstyle-images")

	v.SetDefault("database.url", "")
	v.SetDefault("database.migrate", false)
}

// Options controls Load.
type Options struct {
	// File is an explicit config file. Empty searches . and $HOME/.config/hairhue.
	File string
	// Flags are bound on top of everything else when set.
	Flags *pflag.FlagSet
	// SkipDotEnv disables reading .env from the working directory.
	SkipDotEnv bool
}

// Load builds the configuration.
func Load(opts Options) (*Config, error) {
	if !opts.SkipDotEnv {
		// A missing .env is normal.
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hairhue")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, alias := range envAliases {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !slices.Contains(Providers, c.Image.Provider) {
		return fmt.Errorf("image.provider: unknown provider %q (want one of %s)", c.Image.Provider, strings.Join(Providers, ", "))
	}
	if !slices.Contains(StorageBackends, c.Storage.Backend) {
		return fmt.Errorf("storage.backend: unknown backend %q (want one of %s)", c.Storage.Backend, strings.Join(StorageBackends, ", "))
	}

	for _, t := range []struct {
		name string
		d    time.Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"server.transform_timeout", c.Server.TransformTimeout},
	} {
		if t.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", t.name, t.d)
		}
	}

	if c.Storage.Backend == "supabase" && (c.Supabase.URL == "" || c.Supabase.Key == "") {
		return errors.New("storage.backend supabase requires SUPABASE_URL and SUPABASE_KEY")
	}
	return nil
}
