package cli

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mvogel/trackwork/internal/core/tracker"
	"github.com/mvogel/trackwork/internal/interface/tui"
)

var liveObjective string

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Display the current session's runtime until interrupted",
	Long: `Show a live, once-per-second counter of the running session.

An already-open session is adopted with its original start time; otherwise
a new session starts immediately. Ctrl+C stops tracking, persists the end
time together with the given objective, and prints the current report.`,
	RunE: runLive,
}

func init() {
	rootCmd.AddCommand(liveCmd)
	liveCmd.Flags().StringVarP(&liveObjective, "objective", "o", "", "Objective for this session")
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	sessions, err := s.Load()
	if err != nil {
		return err
	}
	warnSkipped(s)

	tr := tracker.New(s)
	var start time.Time
	adopted := false
	if n := len(sessions); n > 0 && sessions[n-1].IsOpen() {
		start = sessions[n-1].Start
		adopted = true
	} else {
		updated, err := tr.Begin("")
		if err != nil {
			return err
		}
		start = updated[len(updated)-1].Start
	}

	p := tea.NewProgram(tui.NewLive(start, adopted, liveObjective))
	_, runErr := p.Run()
	if err := finishedLive(runErr); err != nil {
		return err
	}

	sessions, err = tr.EndCurrent(liveObjective)
	if err != nil {
		return err
	}
	fmt.Println("Tracking finished")
	showReport(sessions)
	return nil
}

// finishedLive decides whether the live view ended normally. A delivered
// interrupt signal surfaces from the event loop as tea.ErrInterrupted; it is
// the regular way to stop tracking, not a failure, and must still run the
// stop sequence.
func finishedLive(err error) error {
	if err == nil || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return fmt.Errorf("live view: %w", err)
}
