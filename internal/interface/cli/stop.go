package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvogel/trackwork/internal/core/tracker"
)

var stopObjective string

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the currently tracked session",
	Long: `Close the open work session, stamping its end with the current time.

The objective given here overwrites whatever was set when the session
started. Prints the current month's report afterwards.`,
	RunE: runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
	stopCmd.Flags().StringVarP(&stopObjective, "objective", "o", "", "Objective for this session")
}

func runStop(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	sessions, err := tracker.New(s).EndCurrent(stopObjective)
	if err != nil {
		return err
	}
	warnSkipped(s)
	showReport(sessions)
	return nil
}
