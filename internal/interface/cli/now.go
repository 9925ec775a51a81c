package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvogel/trackwork/internal/core/tracker"
)

var nowObjective string

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Start tracking work now",
	Long: `Start a new work session.

Fails if the last session is still open; close it first with 'stop'.
Prints the current month's report afterwards.

Examples:
  trackwork now
  trackwork now -o "fix flaky importer test"`,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
	nowCmd.Flags().StringVarP(&nowObjective, "objective", "o", "", "Objective for this session")
}

func runNow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	sessions, err := tracker.New(s).Begin(nowObjective)
	if err != nil {
		return err
	}
	warnSkipped(s)
	showReport(sessions)
	return nil
}
