package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort             = 3004
	defaultSampleEventCount = 100
	defaultShutdownTimeout  = 5 * time.Second
)

var defaultAllowOrigins = []string{"http://localhost:3000", "http://localhost:3100"}

// Config contains runtime configuration required by the service.
type Config struct {
	Port             int
	AllowOrigins     []string
	SeedSampleData   bool
	SampleEventCount int
	Debug            bool
	ShutdownTimeout  time.Duration
}

func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset.
// CORS_ALLOW_ORIGINS format: "http://a:3000,http://b:3100"
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:             defaultPort,
		AllowOrigins:     defaultAllowOrigins,
		SeedSampleData:   true,
		SampleEventCount: defaultSampleEventCount,
		ShutdownTimeout:  defaultShutdownTimeout,
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = n
	}

	if v := strings.TrimSpace(getenv("CORS_ALLOW_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			o = strings.TrimSpace(o)
			if o == "" {
				continue
			}
			if o == "*" {
				return Config{}, errors.New("CORS_ALLOW_ORIGINS must list explicit origins")
			}
			origins = append(origins, o)
		}
		if len(origins) == 0 {
			return Config{}, errors.New("CORS_ALLOW_ORIGINS has no origins")
		}
		cfg.AllowOrigins = origins
	}

	if v := strings.TrimSpace(getenv("SEED_SAMPLE_DATA")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED_SAMPLE_DATA %q", v)
		}
		cfg.SeedSampleData = b
	}

	if v := strings.TrimSpace(getenv("SAMPLE_EVENT_COUNT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid SAMPLE_EVENT_COUNT %q", v)
		}
		cfg.SampleEventCount = n
	}

	// an unparseable DEBUG is treated as off, like the other services
	if dbg, err := strconv.ParseBool(strings.TrimSpace(getenv("DEBUG"))); err == nil {
		cfg.Debug = dbg
	}

	if v := strings.TrimSpace(getenv("SHUTDOWN_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
