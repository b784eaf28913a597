package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	statusadapter "github.com/bnema/ignite-timer/internal/adapters/render/status"
	"github.com/bnema/ignite-timer/internal/application"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	Active           bool       `json:"active"`
	CycleID          string     `json:"cycleId,omitempty"`
	Task             string     `json:"task,omitempty"`
	MinutesAmount    int        `json:"minutesAmount,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	ElapsedSeconds   int        `json:"elapsedSeconds"`
	RemainingSeconds int        `json:"remainingSeconds"`
	Degraded         bool       `json:"degraded"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.session.FinishIfElapsed(cmd.Context()); err != nil {
				return fmt.Errorf("refresh active cycle: %w", err)
			}

			return writeStatusOutput(cmd, app, app.session.Snapshot(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")

	return cmd
}

func writeStatusOutput(cmd *cobra.Command, app *app, snapshot application.Snapshot, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(newStatusOutput(snapshot, app.degraded()))
	}

	rendered, err := app.statusRenderer(snapshot, statusadapter.RenderOptions{
		Now:      app.now(),
		Degraded: app.degraded(),
	})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func newStatusOutput(snapshot application.Snapshot, degraded bool) statusOutput {
	out := statusOutput{Degraded: degraded}
	if snapshot.ActiveCycle == nil {
		return out
	}

	start := snapshot.ActiveCycle.StartDate.UTC()
	out.Active = true
	out.CycleID = string(snapshot.ActiveCycle.ID)
	out.Task = snapshot.ActiveCycle.Task
	out.MinutesAmount = snapshot.ActiveCycle.MinutesAmount
	out.StartDate = &start
	out.ElapsedSeconds = snapshot.AmountSecondsPassed
	out.RemainingSeconds = snapshot.RemainingSeconds()

	return out
}
