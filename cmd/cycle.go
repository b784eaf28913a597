package cmd

import (
	"fmt"
	"time"

	statusadapter "github.com/bnema/ignite-timer/internal/adapters/render/status"
	"github.com/bnema/ignite-timer/internal/application"
	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/spf13/cobra"
)

const noActiveCycleMessage = "No cycle in progress."

func newStartCmd(app *app) *cobra.Command {
	var task string
	var minutes int
	var force bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new focus cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := domain.NewCycleInput{Task: task, MinutesAmount: minutes}
			if err := input.Validate(); err != nil {
				return fmt.Errorf("validate cycle: %w", err)
			}

			if _, err := app.session.FinishIfElapsed(cmd.Context()); err != nil {
				return fmt.Errorf("refresh active cycle: %w", err)
			}

			if active, ok := app.session.ActiveCycle(); ok {
				if !force {
					return fmt.Errorf("start cycle: %w: %q is still running, use --force to interrupt it", domain.ErrCycleAlreadyActive, active.Task)
				}
				if err := app.session.InterruptCurrentCycle(cmd.Context()); err != nil {
					return fmt.Errorf("interrupt active cycle: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Interrupted %q.\n", active.Task)
			}

			cycle, err := app.session.CreateNewCycle(cmd.Context(), application.CreateCycleCommand{
				Task:          input.Task,
				MinutesAmount: input.MinutesAmount,
			})
			if err != nil {
				return fmt.Errorf("start cycle: %w", err)
			}

			ends := cycle.StartDate.Add(time.Duration(cycle.TotalSeconds()) * time.Second)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Started %q for %d min, ends at %s.\n", cycle.Task, cycle.MinutesAmount, ends.Local().Format("15:04"))
			return err
		},
	}

	cmd.Flags().StringVarP(&task, "task", "t", "", "What you are going to work on")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 25, "Cycle length in minutes (5-60, multiple of 5)")
	cmd.Flags().BoolVar(&force, "force", false, "Interrupt the running cycle first")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

func newInterruptCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interrupt",
		Short: "Interrupt the running cycle",
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

			active, ok := app.session.ActiveCycle()
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), noActiveCycleMessage)
				return err
			}

			if err := app.session.InterruptCurrentCycle(cmd.Context()); err != nil {
				return fmt.Errorf("interrupt cycle: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Interrupted %q after %s.\n", active.Task, statusadapter.FormatClock(app.session.AmountSecondsPassed()))
			return err
		},
	}
}

func newFinishCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Mark the running cycle as completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, ok := app.session.ActiveCycle()
			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), noActiveCycleMessage)
				return err
			}

			if err := app.session.MarkCurrentCycleAsFinished(cmd.Context()); err != nil {
				return fmt.Errorf("finish cycle: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Finished %q.\n", active.Task)
			return err
		},
	}
}
