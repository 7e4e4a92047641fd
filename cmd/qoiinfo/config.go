package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the qoiinfo configuration file (~/.config/qoiinfo/config.yaml).
// Values only apply to flags that were not set on the command line.
type Config struct {
	Format string `yaml:"format"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`

	ServerAddress string `yaml:"server_address"`
	MaxBodyBytes  *int64 `yaml:"max_body_bytes"`
	StoreSize     *int   `yaml:"store_size"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qoiinfo", "config.yaml")
}

// loadConfig reads the config file at path. An empty path means the default
// location, where a missing file is not an error. An explicit path must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configPath()
		if path == "" {
			return Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyRootConfig copies config values into opts for flags the user did not set.
func applyRootConfig(c *cli.Command, cfg Config, opts *rootOptions) {
	if cfg.Format != "" && !c.IsSet("format") {
		opts.format = cfg.Format
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		opts.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		opts.logFormat = cfg.LogFormat
	}
	if cfg.LogFile != "" && !c.IsSet("log-file") {
		opts.logFile = cfg.LogFile
	}
}

// applyServeConfig applies config file defaults to serve command options.
func applyServeConfig(c *cli.Command, cfg Config, opts *serveOptions) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		opts.addr = cfg.ServerAddress
	}
	if cfg.MaxBodyBytes != nil && !c.IsSet("max-body") {
		opts.maxBody = *cfg.MaxBodyBytes
	}
	if cfg.StoreSize != nil && !c.IsSet("store-size") {
		opts.storeSize = *cfg.StoreSize
	}
}
