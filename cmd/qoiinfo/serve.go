package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/qoiinfo/internal/api"
	"github.com/samcharles93/qoiinfo/internal/logger"
)

type serveOptions struct {
	addr        string
	readTimeout time.Duration
	maxBody     int64
	storeSize   int
}

func serveCmd(root *rootOptions) *cli.Command {
	opts := &serveOptions{}

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the header inspection API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8087",
				Sources:     cli.EnvVars("QOIINFO_ADDR"),
				Destination: &opts.addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       10 * time.Second,
				Destination: &opts.readTimeout,
			},
			&cli.Int64Flag{
				Name:        "max-body",
				Usage:       "maximum upload size in bytes",
				Value:       api.DefaultMaxBodyBytes,
				Destination: &opts.maxBody,
			},
			&cli.IntFlag{
				Name:        "store-size",
				Usage:       "number of decoded headers kept in memory",
				Value:       api.DefaultStoreSize,
				Destination: &opts.storeSize,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			applyServeConfig(c, root.cfg, opts)
			log := logger.FromContext(ctx)

			store := api.NewHeaderStore(opts.storeSize)
			server := api.NewServer(store, api.Config{
				MaxBodyBytes: opts.maxBody,
				Logger:       log,
			})
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)

			log.Info("starting server", "address", opts.addr, "max_body", opts.maxBody, "store_size", opts.storeSize)
			sc := echo.StartConfig{
				Address: opts.addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = opts.readTimeout
					return nil
				},
			}
			if err := sc.Start(ctx, e); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return cli.Exit("ERROR: "+err.Error(), 1)
			}
			log.Info("server stopped")
			return nil
		},
	}
}
