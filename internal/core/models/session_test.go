package models

import (
	"testing"
	"time"
)

func TestSessionValidation(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{
			name: "valid closed session",
			session: Session{
				Start:     time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
				End:       time.Date(2026, 3, 4, 17, 0, 0, 0, time.UTC),
				Objective: "refactor importer",
			},
			wantErr: false,
		},
		{
			name: "valid open session",
			session: Session{
				Start: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
			},
			wantErr: false,
		},
		{
			name:    "missing start",
			session: Session{Objective: "no start"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSessionDuration(t *testing.T) {
	start := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	now := start.Add(5 * time.Minute)

	closed := Session{Start: start, End: start.Add(2 * time.Hour)}
	if got := closed.Duration(now); got != 2*time.Hour {
		t.Errorf("closed session duration = %v, want %v", got, 2*time.Hour)
	}
	if closed.IsOpen() {
		t.Error("closed session reported as open")
	}

	open := Session{Start: start}
	if got := open.Duration(now); got != 5*time.Minute {
		t.Errorf("open session duration = %v, want %v", got, 5*time.Minute)
	}
	if !open.IsOpen() {
		t.Error("open session reported as closed")
	}
}
