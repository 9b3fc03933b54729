package playlytics

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a Playlytics config file.
type fileConfig struct {
	ServerKey               string `yaml:"server_key"`
	BaseURL                 string `yaml:"base_url"`
	AutoFlushIntervalMillis int    `yaml:"auto_flush_interval_millis"`
	MaxBatchSize            int    `yaml:"max_batch_size"`
	EnableAutoFlush         *bool  `yaml:"enable_auto_flush"`
	Debug                   bool   `yaml:"debug"`
}

// LoadConfigFile reads a YAML configuration file into a Config. Unset
// fields keep their zero values; NewWithConfig applies defaults on top.
//
// Example file:
//
//	server_key: srv-1234567890abcdef
//	base_url: https://ingest.example.com
//	auto_flush_interval_millis: 10000
//	max_batch_size: 500
//	enable_auto_flush: true
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("playlytics: failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("playlytics: failed to parse config file %s: %w", path, err)
	}

	cfg := &Config{
		ServerKey:    fc.ServerKey,
		BaseURL:      fc.BaseURL,
		MaxBatchSize: fc.MaxBatchSize,
		Debug:        fc.Debug,
	}
	if fc.AutoFlushIntervalMillis > 0 {
		cfg.AutoFlushInterval = time.Duration(fc.AutoFlushIntervalMillis) * time.Millisecond
	}
	if fc.EnableAutoFlush != nil {
		cfg.DisableAutoFlush = !*fc.EnableAutoFlush
	}
	return cfg, nil
}

// NewFromConfigFile creates a new client from a YAML configuration file.
// Explicit options override file values.
func NewFromConfigFile(path string, opts ...ConfigOption) (*Client, error) {
	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return NewWithConfig(cfg)
}
