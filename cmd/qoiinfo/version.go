package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/qoiinfo/internal/version"
)

func versionCmd(root *rootOptions) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info := version.Resolve()
			_, _ = fmt.Fprintf(root.stdout, "version:    %s\n", info.Version)
			if info.Commit != "" {
				_, _ = fmt.Fprintf(root.stdout, "commit:     %s\n", info.Commit)
			}
			if info.BuildTime != "" {
				_, _ = fmt.Fprintf(root.stdout, "build time: %s\n", info.BuildTime)
			}
			return nil
		},
	}
}
