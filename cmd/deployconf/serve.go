package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	docs "github.com/0xPexy/deployconf/docs"
	"github.com/0xPexy/deployconf/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolved configuration over HTTP (read-only, no keys)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.rt.HTTPAddr
			}
			if a.log.IsLevelEnabled(logrus.DebugLevel) {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}

			docs.SwaggerInfo.Title = "deployconf API"
			docs.SwaggerInfo.Description = "Read-only lookup of the resolved contract toolchain configuration."
			docs.SwaggerInfo.Version = Version
			docs.SwaggerInfo.BasePath = "/"

			logger := a.log.WithField("component", "http")
			srv := server.NewHTTP(addr, server.NewRouter(a.cfg, logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(srv.Start)
			g.Go(func() error {
				<-gctx.Done()
				shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Stop(shutdown)
			})
			logger.WithField("addr", srv.Addr()).Info("listening")

			if err := g.Wait(); err != nil {
				return err
			}
			logger.Info("stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $DEPLOYCONF_HTTP_ADDR or :8080)")
	return cmd
}
