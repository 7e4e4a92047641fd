package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/qoiinfo/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit status. Only main calls
// os.Exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			_, _ = fmt.Fprintln(stderr, msg)
		}
		if code := exitErr.ExitCode(); code != 0 {
			return code
		}
		return 1
	}
	_, _ = fmt.Fprintln(stderr, "ERROR:", err)
	return 1
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	return &cli.Command{
		Name:      "qoiinfo",
		Usage:     "Print the header of a QOI image",
		ArgsUsage: "<input>.qoi",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     append(outputFlags(opts), loggingFlags(opts)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return ctx, cli.Exit("ERROR: "+err.Error(), 1)
			}
			opts.cfg = cfg
			applyRootConfig(c, cfg, opts)

			log, closer, err := logger.Build(opts.loggerOptions(), stderr)
			if err != nil {
				return ctx, cli.Exit("ERROR: "+err.Error(), 1)
			}
			opts.logCloser = closer
			return logger.WithContext(ctx, log), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if opts.logCloser == nil {
				return nil
			}
			return opts.logCloser.Close()
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, c *cli.Command) error {
			return describeAction(ctx, c, opts)
		},
		Commands: []*cli.Command{
			serveCmd(opts),
			versionCmd(opts),
		},
	}
}
