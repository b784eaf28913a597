package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "ignite",
		Short:         "Ignite: a focus cycle timer for the terminal",
		Long:          "ignite runs named focus cycles with a target duration, keeps a history of completed and interrupted cycles, and shows a live countdown in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(cmd.Context(), cmd.ErrOrStderr(), verbose)
			if err != nil {
				return err
			}

			*app = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newStartCmd(app),
		newInterruptCmd(app),
		newFinishCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
		newWatchCmd(app),
	)

	return rootCmd
}
