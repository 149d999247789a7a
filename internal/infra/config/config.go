package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the client.
type Config struct {
	API         APIConfig         `yaml:"api"`
	Geocode     GeocodeConfig     `yaml:"geocode"`
	Tracking    TrackingConfig    `yaml:"tracking"`
	Attractions AttractionsConfig `yaml:"attractions"`
	UI          UIConfig          `yaml:"ui"`
}

// APIConfig points the client at the travel backend.
type APIConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// GeocodeConfig drives the external geocoding collaborator.
type GeocodeConfig struct {
	BaseURL   string `yaml:"baseUrl"`
	UserAgent string `yaml:"userAgent"`
}

// TrackingConfig holds price-tracking defaults.
type TrackingConfig struct {
	DefaultWeeks int `yaml:"defaultWeeks"`
	MaxWeeks     int `yaml:"maxWeeks"`
}

// AttractionsConfig holds attraction-search defaults.
type AttractionsConfig struct {
	DefaultRadius int `yaml:"defaultRadius"`
}

// UIConfig controls presentation level behavior.
type UIConfig struct {
	Currency string `yaml:"currency"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = parsed
		}
	}
	if v := os.Getenv("GEOCODE_BASE_URL"); v != "" {
		cfg.Geocode.BaseURL = v
	}
	if v := os.Getenv("GEOCODE_USER_AGENT"); v != "" {
		cfg.Geocode.UserAgent = v
	}
	if v := os.Getenv("TRACKING_DEFAULT_WEEKS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Tracking.DefaultWeeks = parsed
		}
	}
	if v := os.Getenv("ATTRACTIONS_DEFAULT_RADIUS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Attractions.DefaultRadius = parsed
		}
	}
	if v := os.Getenv("UI_CURRENCY"); v != "" {
		cfg.UI.Currency = v
	}
}

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 30 * time.Second,
		},
		Geocode: GeocodeConfig{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "tripdeck/1.0",
		},
		Tracking: TrackingConfig{
			DefaultWeeks: 12,
			MaxWeeks:     52,
		},
		Attractions: AttractionsConfig{
			DefaultRadius: 1000,
		},
		UI: UIConfig{
			Currency: "TWD",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.baseUrl cannot be empty")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	if strings.TrimSpace(c.Geocode.BaseURL) == "" {
		return errors.New("geocode.baseUrl cannot be empty")
	}
	if c.Tracking.DefaultWeeks <= 0 {
		return errors.New("tracking.defaultWeeks must be positive")
	}
	if c.Tracking.MaxWeeks < c.Tracking.DefaultWeeks {
		return errors.New("tracking.maxWeeks cannot be below tracking.defaultWeeks")
	}
	if c.Attractions.DefaultRadius <= 0 {
		return errors.New("attractions.defaultRadius must be positive")
	}
	if strings.TrimSpace(c.UI.Currency) == "" {
		return errors.New("ui.currency cannot be empty")
	}
	return nil
}
