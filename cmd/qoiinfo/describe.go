package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/qoiinfo/internal/logger"
	"github.com/samcharles93/qoiinfo/internal/report"
	"github.com/samcharles93/qoiinfo/pkg/qoi"
)

const usageLine = "Usage: qoiinfo <input>.qoi"

// stdoutIsTerminal is a small seam for tests.
var stdoutIsTerminal = isTerminal

func describeAction(ctx context.Context, c *cli.Command, opts *rootOptions) error {
	log := logger.FromContext(ctx)

	switch c.NArg() {
	case 0:
		return cli.Exit(usageLine, 1)
	case 1:
	default:
		return cli.Exit(fmt.Sprintf("ERROR: expected one input file, got %d\n%s", c.NArg(), usageLine), 1)
	}
	path := c.Args().First()

	format, err := resolveFormat(opts.format, opts.stdout)
	if err != nil {
		return cli.Exit("ERROR: "+err.Error(), 1)
	}

	h, err := qoi.DecodeFile(path)
	if err != nil {
		log.Debug("decode failed", "file", path, "error", err)
		return cli.Exit(errorMessage(err), 1)
	}
	log.Debug("decoded header", "file", path, "width", h.Width, "height", h.Height,
		"channels", uint8(h.Channels), "colorspace", uint8(h.Colorspace))

	if err := report.Write(opts.stdout, format, report.NewSummary(path, h)); err != nil {
		return cli.Exit("ERROR: write report: "+err.Error(), 1)
	}
	return nil
}

// resolveFormat turns the --format value into a report format. "auto" picks
// the styled report on terminals.
func resolveFormat(name string, w io.Writer) (report.Format, error) {
	if strings.EqualFold(strings.TrimSpace(name), "auto") {
		if stdoutIsTerminal(w) {
			return report.FormatPretty, nil
		}
		return report.FormatText, nil
	}
	return report.ParseFormat(name)
}

// errorMessage prints open failures verbatim and prefixes decode failures.
func errorMessage(err error) string {
	var ioErr *qoi.IOError
	var pathErr *fs.PathError
	if !errors.As(err, &ioErr) && errors.As(err, &pathErr) {
		return "ERROR " + err.Error()
	}
	return "ERROR: " + err.Error()
}
