package main

import (
	"io"

	"github.com/Scalingo/gitlangcards/tui"
	"github.com/Scalingo/gitlangcards/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newBrowseCommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "browse USER",
		Short: "Slide through the language cards of a user in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			// logs would draw over the program
			log.SetOutput(io.Discard)
			if logFile != "" {
				f, err := tea.LogToFile(logFile, "")
				if err != nil {
					return errors.Wrapf(err, "unable to open log file %s", logFile)
				}
				defer f.Close()
				log.SetOutput(f)
			}

			program := tea.NewProgram(tui.NewModel(args[0], 3), tea.WithContext(cmd.Context()))
			browser := tui.NewBrowser(program)
			container := widget.NewContainer(a.githubService, a.colors, browser, browser)

			ready := false
			done, err := container.Initialize(cmd.Context(), args[0], func() { ready = true })
			if err != nil {
				return err
			}

			go func() {
				<-done
				if !ready {
					program.Send(tui.StatusMsg("unable to load languages"))
				}
			}()

			_, runErr := program.Run()

			// the carousel is the program itself, destroying it after Run returned is a no-op quit
			if err := container.Teardown(); err != nil {
				log.WithError(err).Warning("unable to tear down widget")
			}

			if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
				return runErr
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while browsing")

	return cmd
}
