package tracker

import (
	"errors"
	"time"

	"github.com/mvogel/trackwork/internal/core/models"
	"github.com/mvogel/trackwork/internal/core/store"
)

var (
	// ErrAlreadyTracking is returned by Begin when the last stored session
	// still has no end.
	ErrAlreadyTracking = errors.New("already tracking: last session has no end")

	// ErrNothingToStop is returned by EndCurrent when there is no open
	// session to close.
	ErrNothingToStop = errors.New("nothing to stop: no open session")
)

// Tracker applies the session lifecycle rules on top of a store.
type Tracker struct {
	store *store.Store
	now   func() time.Time
}

func New(s *store.Store) *Tracker {
	return &Tracker{store: s, now: time.Now}
}

// Begin appends a new open session starting now. It fails with
// ErrAlreadyTracking if the last session is still open, leaving the file
// untouched.
func (t *Tracker) Begin(objective string) ([]models.Session, error) {
	sessions, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	if n := len(sessions); n > 0 && sessions[n-1].IsOpen() {
		return nil, ErrAlreadyTracking
	}
	sessions = append(sessions, models.Session{
		Start:     t.now(),
		Objective: objective,
	})
	if err := t.store.Save(sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// EndCurrent closes the open session, stamping its end with now and
// overwriting its objective. It fails with ErrNothingToStop if the store is
// empty or the last session is already closed, leaving the file untouched.
func (t *Tracker) EndCurrent(objective string) ([]models.Session, error) {
	sessions, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	n := len(sessions)
	if n == 0 || !sessions[n-1].IsOpen() {
		return nil, ErrNothingToStop
	}
	sessions[n-1].End = t.now()
	sessions[n-1].Objective = objective
	if err := t.store.Save(sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
