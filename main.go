package main

import (
	"context"
	"os"

	"github.com/Scalingo/gitlangcards/colors"
	"github.com/Scalingo/gitlangcards/config"
	"github.com/Scalingo/gitlangcards/logger"
	"github.com/Scalingo/gitlangcards/service"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configFile string

// dependencies shared by all commands
type app struct {
	config        *config.Config
	githubService service.GithubService
	colors        *colors.Table
}

func main() {
	root := &cobra.Command{
		Use:           "gitlangcards",
		Short:         "Language cards of a GitHub user",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "path to the TOML config file (default config/config.toml)")

	root.AddCommand(
		newServeCommand(),
		newRenderCommand(),
		newLanguagesCommand(),
		newBrowseCommand(),
	)

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// setup loads the configuration, configures the logger and builds the github service
func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	// configure logger
	logger.Setup(*cfg)

	table, err := colors.LoadWithOverride(cfg.Colors.OverrideFile, cfg.Colors.DefaultColor)
	if err != nil {
		return nil, err
	}

	// setup github client
	// we do here and pass the client to Github service to easily improve tests with mock client
	githubClient := service.NewGithubClient(*cfg)

	// setup local rate limiter from the current github rate limits
	rateLimiter, err := service.NewRateLimiter(ctx, githubClient)
	if err != nil {
		return nil, err
	}

	return &app{
		config:        cfg,
		githubService: service.NewGithubService(*cfg, githubClient, rateLimiter),
		colors:        table,
	}, nil
}
