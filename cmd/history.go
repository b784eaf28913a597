package cmd

import (
	"encoding/json"
	"fmt"

	historyadapter "github.com/bnema/ignite-timer/internal/adapters/render/history"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var asJSON bool
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List all cycles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.session.FinishIfElapsed(cmd.Context()); err != nil {
				return fmt.Errorf("refresh active cycle: %w", err)
			}

			doc := historyadapter.Build(app.session.Snapshot())
			switch {
			case asJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			case asYAML:
				return historyadapter.WriteYAML(cmd.OutOrStdout(), doc)
			default:
				rendered, err := app.historyRenderer(doc, app.now())
				if err != nil {
					return fmt.Errorf("render history: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print history as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print history as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}
