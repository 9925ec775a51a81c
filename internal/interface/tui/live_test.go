package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{26 * time.Hour, "26:00:00"},
		{-time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestLiveModelTickGrowsElapsed(t *testing.T) {
	start := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	m := NewLive(start, true, "deep work")

	// Five minutes in, the view shows the adopted session's elapsed time.
	next, cmd := m.Update(tickMsg(start.Add(5 * time.Minute)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	view := next.View()
	if !strings.Contains(view, "00:05:00") {
		t.Errorf("view missing elapsed time:\n%s", view)
	}
	if !strings.Contains(view, "deep work") {
		t.Errorf("view missing objective:\n%s", view)
	}

	// One second later the counter has advanced.
	next, _ = next.Update(tickMsg(start.Add(5*time.Minute + time.Second)))
	if !strings.Contains(next.View(), "00:05:01") {
		t.Errorf("view did not advance:\n%s", next.View())
	}
}

func TestLiveModelQuitsOnInterrupt(t *testing.T) {
	m := NewLive(time.Now(), false, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should produce a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("ctrl+c produced %T, want tea.QuitMsg", msg)
	}
}
