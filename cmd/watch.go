package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/ignite-timer/internal/adapters/tui/countdown"
	"github.com/spf13/cobra"
)

const watchEventBuffer = 32

func newWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show a live countdown of the running cycle",
		Long:  "watch shows the remaining time of the running cycle and completes it when the time is up. Press i to interrupt the cycle or q to leave it running in the background.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			finished, err := app.session.FinishIfElapsed(cmd.Context())
			if err != nil {
				return fmt.Errorf("refresh active cycle: %w", err)
			}
			if finished {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Cycle had already completed.")
				return err
			}
			if _, ok := app.session.ActiveCycle(); !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), noActiveCycleMessage)
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			events := app.session.Subscribe(watchEventBuffer)
			app.session.StartTicking(ctx)

			if _, err := countdown.Run(ctx, app.session, events, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("run countdown: %w", err)
			}

			return nil
		},
	}
}
