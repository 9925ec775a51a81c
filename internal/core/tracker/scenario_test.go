package tracker

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mvogel/trackwork/internal/core/report"
	"github.com/mvogel/trackwork/internal/core/store"
)

// Full day-in-the-life pass: empty store, start, stop, default report.
func TestTrackAndReportScenario(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "track.csv"), false)
	tr := New(s)

	start := time.Date(2026, 3, 4, 9, 0, 0, 0, time.FixedZone("CET", 3600))
	tr.now = func() time.Time { return start }

	sessions, err := tr.Begin("morning block")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if len(sessions) != 1 || !sessions[0].IsOpen() {
		t.Fatalf("after Begin: %+v, want one open session", sessions)
	}

	stop := start.Add(2*time.Hour + 30*time.Minute)
	tr.now = func() time.Time { return stop }
	sessions, err = tr.EndCurrent("morning block, extended")
	if err != nil {
		t.Fatalf("EndCurrent() error = %v", err)
	}
	if sessions[0].IsOpen() {
		t.Fatal("session still open after EndCurrent")
	}
	if sessions[0].Objective != "morning block, extended" {
		t.Errorf("objective = %q, want the stop-time value", sessions[0].Objective)
	}

	// Default report: current month, compressed — one line for the day,
	// matching total.
	var buf bytes.Buffer
	report.Render(&buf, sessions, report.Scope{}, false, stop)
	out := buf.String()
	if n := strings.Count(out, "2026-03-04"); n != 1 {
		t.Errorf("day line appears %d times, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, "02:30") {
		t.Errorf("missing day total in report:\n%s", out)
	}
	if !strings.Contains(out, "Total: 02:30") {
		t.Errorf("missing matching grand total in report:\n%s", out)
	}
}
