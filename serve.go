package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Scalingo/gitlangcards/controller"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the widget over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			return serve(a)
		},
	}
}

func serve(a *app) error {
	// setup server and define all routes
	gin.SetMode(gin.ReleaseMode)
	apiController := controller.NewAPIController(*a.config, a.githubService, a.colors)
	router := controller.NewRouter(apiController)

	server := &http.Server{
		Addr:              ":" + a.config.API.ListenPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)

	// start with configuration
	go func() {
		log.Info("server listening on port " + a.config.API.ListenPort)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// wait for interrupt signal to gracefully shut down the server
	// kill default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return errors.Wrap(err, "error while starting server")
	case <-quit:
	}

	log.Info("SIGINT, SIGTERM received, will shut down server ...")

	// the server has 15 seconds to finish the requests it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}

	log.Info("Application stopped gracefully !")
	return nil
}
