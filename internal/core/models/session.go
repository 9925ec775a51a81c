package models

import (
	"errors"
	"time"
)

// TimeLayout is the fixed on-disk timestamp format: date, time, zone offset.
const TimeLayout = "2006-01-02 15:04:05 -0700"

// Session represents one tracked interval of work
type Session struct {
	Start     time.Time // set when tracking begins
	End       time.Time // zero while the session is still open
	Objective string    // free text, may be empty
}

// IsOpen reports whether the session has not been stopped yet.
func (s *Session) IsOpen() bool {
	return s.End.IsZero()
}

// Duration returns the tracked time span. Open sessions are measured
// against the supplied now.
func (s *Session) Duration(now time.Time) time.Duration {
	if s.IsOpen() {
		return now.Sub(s.Start)
	}
	return s.End.Sub(s.Start)
}

// Validate checks if the session has required fields
func (s *Session) Validate() error {
	if s.Start.IsZero() {
		return errors.New("start is required")
	}
	return nil
}
