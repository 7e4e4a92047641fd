package main

import (
	"io"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/qoiinfo/internal/logger"
)

type rootOptions struct {
	configPath string
	format     string
	logLevel   string
	logFormat  string
	logFile    string
	debug      bool

	cfg       Config
	logCloser io.Closer
	stdout    io.Writer
	stderr    io.Writer
}

func (o *rootOptions) loggerOptions() logger.Options {
	level := o.logLevel
	if o.debug {
		level = "debug"
	}
	return logger.Options{Level: level, Format: o.logFormat, File: o.logFile}
}

func outputFlags(opts *rootOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "report format (auto, text, pretty, json)",
			Value:       "auto",
			Sources:     cli.EnvVars("QOIINFO_FORMAT"),
			Destination: &opts.format,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: user config dir)",
			Sources:     cli.EnvVars("QOIINFO_CONFIG"),
			Destination: &opts.configPath,
		},
	}
}

func loggingFlags(opts *rootOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Sources:     cli.EnvVars("QOIINFO_LOG_LEVEL"),
			Destination: &opts.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &opts.logFormat,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "write JSON logs to a rotating file instead of stderr",
			Destination: &opts.logFile,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &opts.debug,
		},
	}
}
