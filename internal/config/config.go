// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mugendi/wraptimer/pkg/clock"
)

// Config holds the application configuration
type Config struct {
	Verbose  bool
	ShowArgs bool
	Clock    clock.Kind
	Runs     int
	Warmup   int
	Parallel int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Clock: clock.Kind(getEnv("WRAPTIMER_CLOCK", string(clock.KindWall))),
	}
	if _, err := clock.New(cfg.Clock); err != nil {
		return nil, fmt.Errorf("invalid WRAPTIMER_CLOCK: %w", err)
	}

	verbose, err := getEnvBool("WRAPTIMER_VERBOSE", true)
	if err != nil {
		return nil, err
	}
	cfg.Verbose = verbose

	showArgs, err := getEnvBool("WRAPTIMER_SHOW_ARGS", false)
	if err != nil {
		return nil, err
	}
	cfg.ShowArgs = showArgs

	runs, err := getEnvInt("WRAPTIMER_RUNS", 1)
	if err != nil {
		return nil, err
	}
	cfg.Runs = runs

	warmup, err := getEnvInt("WRAPTIMER_WARMUP", 0)
	if err != nil {
		return nil, err
	}
	cfg.Warmup = warmup

	parallel, err := getEnvInt("WRAPTIMER_PARALLEL", 1)
	if err != nil {
		return nil, err
	}
	cfg.Parallel = parallel

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(`Current Configuration:
======================
Verbose:    %t
Show Args:  %t
Clock:      %s
Runs:       %d
Warmup:     %d
Parallel:   %d`,
		c.Verbose,
		c.ShowArgs,
		c.Clock,
		c.Runs,
		c.Warmup,
		c.Parallel,
	)
}
