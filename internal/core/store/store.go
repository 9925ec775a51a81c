package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mvogel/trackwork/internal/core/models"
)

// ErrFileIO marks failures to open the storage file for writing.
var ErrFileIO = errors.New("storage file i/o error")

var header = []string{"Start", "End", "Objective"}

// Store reads and writes the full session list from a CSV file.
type Store struct {
	Path  string
	Debug bool

	// Skipped counts rows dropped by the most recent Load.
	Skipped int
}

func New(path string, debug bool) *Store {
	return &Store{Path: path, Debug: debug}
}

// Load reads all sessions from the file. A missing file yields an empty
// list. Rows that cannot be parsed are skipped and counted in Skipped.
func (s *Store) Load() ([]models.Session, error) {
	s.Skipped = 0

	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return s.read(f)
}

func (s *Store) read(src io.Reader) ([]models.Session, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1

	// Header row. An empty file behaves like a missing one.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", s.Path, err)
	}

	var sessions []models.Session
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Only per-row parse errors are skippable; a broken
			// underlying reader repeats its error on every Read.
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("read %s: %w", s.Path, err)
			}
			s.skip(rec)
			continue
		}
		if s.Debug {
			fmt.Printf("record: %q\n", rec)
		}
		sess, ok := parseRow(rec)
		if !ok {
			s.skip(rec)
			continue
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

func (s *Store) skip(rec []string) {
	s.Skipped++
	if s.Debug {
		fmt.Printf("skipping malformed record: %q\n", rec)
	}
}

func parseRow(rec []string) (models.Session, bool) {
	if len(rec) == 0 {
		return models.Session{}, false
	}
	start, err := time.Parse(models.TimeLayout, rec[0])
	if err != nil {
		return models.Session{}, false
	}
	sess := models.Session{Start: start}
	if len(rec) > 1 && rec[1] != "" {
		// An unparsable end loads the row as still open.
		if end, err := time.Parse(models.TimeLayout, rec[1]); err == nil {
			sess.End = end
		}
	}
	if len(rec) > 2 {
		sess.Objective = rec[2]
	}
	if err := sess.Validate(); err != nil {
		return models.Session{}, false
	}
	return sess, true
}

// Save truncates and rewrites the whole file: header row plus one row per
// session. Open sessions serialize End as the empty field.
func (s *Store) Save(sessions []models.Session) error {
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: open %s for writing: %v", ErrFileIO, s.Path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("write header to %s: %w", s.Path, err)
	}
	for _, sess := range sessions {
		end := ""
		if !sess.IsOpen() {
			end = sess.End.Format(models.TimeLayout)
		}
		row := []string{sess.Start.Format(models.TimeLayout), end, sess.Objective}
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return fmt.Errorf("write record to %s: %w", s.Path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", s.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.Path, err)
	}
	return nil
}
