package space

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the connection settings for a SPACE deployment.
type Config struct {
	APIKey      string        `env:"SPACE_API_KEY,required" yaml:"apiKey"`
	Host        string        `env:"SPACE_HOST" envDefault:"localhost" yaml:"host"`
	Port        int           `env:"SPACE_PORT" envDefault:"5403" yaml:"port"`
	Scheme      string        `env:"SPACE_SCHEME" envDefault:"http" yaml:"scheme"`
	BasePath    string        `env:"SPACE_BASE_PATH" envDefault:"api/v1" yaml:"basePath"`
	HTTPTimeout time.Duration `env:"SPACE_HTTP_TIMEOUT" envDefault:"30s" yaml:"httpTimeout"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads the configuration from environment variables, loading a
// .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// LoadConfigFile reads the configuration from a YAML file. Fields absent
// from the file keep their defaults.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Host:        "localhost",
		Port:        5403,
		Scheme:      "http",
		BasePath:    "api/v1",
		HTTPTimeout: 30 * time.Second,
	}
}

// Validate checks that the configuration can address a deployment.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if strings.TrimSpace(c.Host) == "" {
		return ErrMissingHost
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidConfig, c.Scheme)
	}
	return nil
}

// BaseURL returns the root URL every endpoint path is joined to.
func (c Config) BaseURL() *url.URL {
	return &url.URL{
		Scheme: c.Scheme,
		Host:   c.Host + ":" + strconv.Itoa(c.Port),
		Path:   "/" + strings.Trim(c.BasePath, "/"),
	}
}
