package main

import (
	"fmt"

	"github.com/Scalingo/gitlangcards/model"
	"github.com/Scalingo/gitlangcards/tui"
	"github.com/Scalingo/gitlangcards/widget"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// terminalMount prints the cards once rendered
type terminalMount struct {
	cmd *cobra.Command
}

func (m terminalMount) Render(cards []model.LanguageCard) error {
	_, err := fmt.Fprintln(m.cmd.OutOrStdout(), tui.RenderTable(cards))
	return err
}

// noCarousel is used where the output is static
type noCarousel struct{}

func (noCarousel) Initialize(int) error { return nil }
func (noCarousel) Destroy() error       { return nil }

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages USER",
		Short: "Print the language cards of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			container := widget.NewContainer(a.githubService, a.colors, terminalMount{cmd: cmd}, noCarousel{})
			defer container.Teardown() //nolint:errcheck

			ready := false
			done, err := container.Initialize(cmd.Context(), args[0], func() { ready = true })
			if err != nil {
				return err
			}
			<-done

			if !ready {
				return errors.Errorf("unable to load the languages of %s, see logs", args[0])
			}

			return nil
		},
	}
}
