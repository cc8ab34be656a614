package main

import (
	"os"
	"path/filepath"

	"github.com/Scalingo/gitlangcards/widget"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRenderCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "render USER...",
		Short: "Render the widget fragment of each user to an HTML file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, usernames []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return errors.Wrapf(err, "unable to create %s", outDir)
			}

			results := widget.RenderBatch(cmd.Context(), a.githubService, a.colors, usernames, a.config.Tasks.MaxParallelTasksAllowed)

			failed := 0
			for _, result := range results {
				logger := log.WithField("username", result.Username)

				if result.Err != nil {
					failed++
					logger.WithError(result.Err).Error("widget not rendered")
					continue
				}

				if !result.Ready {
					failed++
					logger.Warning("no cards fetched, writing an empty carousel")
				}

				path := filepath.Join(outDir, result.Username+".html")
				content := append(result.Fragment, []byte("\n"+result.Script+"\n")...)

				if err := os.WriteFile(path, content, 0o644); err != nil {
					return errors.Wrapf(err, "unable to write %s", path)
				}

				logger.WithFields(log.Fields{
					"file":  path,
					"cards": result.Cards,
				}).Info("widget rendered")
			}

			if failed > 0 {
				return errors.Errorf("%d of %d widgets could not be rendered", failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")

	return cmd
}
