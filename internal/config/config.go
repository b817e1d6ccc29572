package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

// PokeAPIConfig holds the upstream API settings
type PokeAPIConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	PageSize             int    `mapstructure:"page_size"`
	Timeout              int    `mapstructure:"timeout"`
	MaxWorkers           int    `mapstructure:"max_workers"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	Language             string `mapstructure:"language"`
	UserAgent            string `mapstructure:"user_agent"`
	Proxy                string `mapstructure:"proxy"`
}

// ServerConfig holds the JSON view server settings
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from a .env file, a YAML file and environment
// variables, in increasing order of precedence. When path is empty a
// config.yaml in the current directory is used if present; a missing file
// is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment from .env")
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("pokedex")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("No config file found, using defaults and environment")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.PokeAPI.BaseURL == "" {
		return fmt.Errorf("pokeapi.base_url must be set")
	}
	if c.PokeAPI.PageSize <= 0 {
		return fmt.Errorf("pokeapi.page_size must be positive, got %d", c.PokeAPI.PageSize)
	}
	if c.PokeAPI.MaxWorkers < 0 || c.PokeAPI.MaxRequestsPerSecond < 0 {
		return fmt.Errorf("pokeapi limits must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	return nil
}

// ApplyLogging configures the package-level logrus logger.
func (c *Config) ApplyLogging() {
	if level, err := log.ParseLevel(c.Log.Level); err == nil {
		log.SetLevel(level)
	}

	if strings.EqualFold(c.Log.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.page_size", 151)
	v.SetDefault("pokeapi.timeout", 30)
	v.SetDefault("pokeapi.max_workers", 0)
	v.SetDefault("pokeapi.max_requests_per_second", 0)
	v.SetDefault("pokeapi.language", "en")
	v.SetDefault("pokeapi.user_agent", "pokedex-viewer/1.0")
	v.SetDefault("pokeapi.proxy", "")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
