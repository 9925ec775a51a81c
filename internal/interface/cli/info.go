package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvogel/trackwork/internal/core/report"
)

var infoUncompressed bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display info about time worked so far",
	Long: `Print a report of tracked time.

By default the current calendar month is shown, one line per day. Pass
--uncompressed for one line per session instead.

Examples:
  trackwork info
  trackwork info --uncompressed
  trackwork info month 2
  trackwork info all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(report.Scope{})
	},
}

var infoMonthCmd = &cobra.Command{
	Use:   "month [DELTA]",
	Short: "Show data from DELTA months ago (default 0, the current month)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta := 0
		if len(args) == 1 {
			d, err := strconv.Atoi(args[0])
			if err != nil || d < 0 {
				return fmt.Errorf("invalid month delta %q: expected a non-negative integer", args[0])
			}
			delta = d
		}
		return runInfo(report.Scope{Delta: delta})
	},
}

var infoAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Show data for all tracked dates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(report.Scope{All: true})
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.AddCommand(infoMonthCmd, infoAllCmd)
	infoCmd.PersistentFlags().BoolVarP(&infoUncompressed, "uncompressed", "u", false,
		"Show each session instead of per-day totals")
}

func runInfo(scope report.Scope) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	sessions, err := s.Load()
	if err != nil {
		return err
	}
	warnSkipped(s)
	report.Render(os.Stdout, sessions, scope, infoUncompressed, time.Now())
	return nil
}
