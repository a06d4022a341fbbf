package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"geohash-service/geohash"
)

type Config struct {
	Server  ServerConfig
	Geohash GeohashConfig
	Index   IndexConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Addr string
}

type GeohashConfig struct {
	// DefaultPrecisionKm is used by encode requests that carry no precision.
	DefaultPrecisionKm float64 `mapstructure:"default_precision_km"`
}

type IndexConfig struct {
	Technique   string
	PrecisionKm float64 `mapstructure:"precision_km"`
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("geohash.default_precision_km", 0.0006)
	v.SetDefault("index.technique", "geohash")
	v.SetDefault("index.precision_km", 2.4)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

// Load reads the configuration from path, or from ./config.yaml when path is
// empty. A missing ./config.yaml is not an error. Environment variables
// prefixed with GEOHASH_ override file values, e.g. GEOHASH_REDIS_ADDR.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("geohash")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the rest of the service relies on.
func (c *Config) Validate() error {
	if _, err := geohash.LengthForPrecision(c.Geohash.DefaultPrecisionKm); err != nil {
		return fmt.Errorf("geohash.default_precision_km: %w", err)
	}
	if _, err := geohash.LengthForPrecision(c.Index.PrecisionKm); err != nil {
		return fmt.Errorf("index.precision_km: %w", err)
	}
	switch c.Index.Technique {
	case "geohash", "rtree":
	default:
		return fmt.Errorf("index.technique must be geohash or rtree, got %q", c.Index.Technique)
	}
	return nil
}
