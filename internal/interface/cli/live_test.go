package cli

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFinishedLive(t *testing.T) {
	if err := finishedLive(nil); err != nil {
		t.Errorf("clean exit mapped to error: %v", err)
	}

	// A real SIGINT surfaces from the event loop wrapped in the kill error;
	// it must take the normal stop path so the session still gets closed.
	interrupted := fmt.Errorf("program was killed: %w", tea.ErrInterrupted)
	if err := finishedLive(interrupted); err != nil {
		t.Errorf("interrupt mapped to error: %v", err)
	}

	if err := finishedLive(errors.New("render failure")); err == nil {
		t.Error("unexpected run error must surface")
	}
}
