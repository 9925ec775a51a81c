package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvogel/trackwork/internal/core/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("120"))
)

// Scope selects the date range of a report: the whole history, or the
// calendar month Delta months before the current one (Delta 0 = current).
type Scope struct {
	All   bool
	Delta int
}

// DayTotal is one compressed report line: a local calendar date and the
// summed duration of every session started on it.
type DayTotal struct {
	Date  string
	Total time.Duration
}

// FilterMonth keeps sessions whose start falls in the calendar month delta
// months before now's month. Anchoring to the first of the month before the
// subtraction keeps a delta taken on the 31st from sliding into the wrong
// month, and rolls over year boundaries for any delta.
func FilterMonth(sessions []models.Session, delta int, now time.Time) []models.Session {
	target := targetMonth(delta, now)
	var out []models.Session
	for _, s := range sessions {
		if s.Start.Year() == target.Year() && s.Start.Month() == target.Month() {
			out = append(out, s)
		}
	}
	return out
}

func targetMonth(delta int, now time.Time) time.Time {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return anchor.AddDate(0, -delta, 0)
}

// AggregateByDay groups sessions by the calendar date of their start and
// sums (end or now) - start per date. The result is sorted by date.
func AggregateByDay(sessions []models.Session, now time.Time) []DayTotal {
	totals := make(map[string]time.Duration)
	for _, s := range sessions {
		totals[s.Start.Format("2006-01-02")] += s.Duration(now)
	}
	out := make([]DayTotal, 0, len(totals))
	for date, total := range totals {
		out = append(out, DayTotal{Date: date, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Render writes the report for the given scope. Uncompressed prints one
// line per session, compressed one line per date; both end with a grand
// total. Open sessions are measured against now.
func Render(w io.Writer, sessions []models.Session, scope Scope, uncompressed bool, now time.Time) {
	if !scope.All {
		sessions = FilterMonth(sessions, scope.Delta, now)
	}

	title := "for all tracked dates"
	if !scope.All {
		title = fmt.Sprintf("for month %s", targetMonth(scope.Delta, now).Format("2006-01"))
	}
	fmt.Fprintln(w, titleStyle.Render(title))

	rule := strings.Repeat("-", 60)
	fmt.Fprintln(w, rule)
	if uncompressed {
		renderSessions(w, sessions, now)
	} else {
		renderDays(w, sessions, now)
	}
	fmt.Fprintln(w, rule)

	var total time.Duration
	for _, s := range sessions {
		total += s.Duration(now)
	}
	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("Total: %s", FormatDuration(total))))
}

func renderSessions(w io.Writer, sessions []models.Session, now time.Time) {
	fmt.Fprintf(w, "%-16s | %-5s | %-8s | %s\n", "Start", "End", "Duration", "Objective")
	for _, s := range sessions {
		end := "open"
		if !s.IsOpen() {
			end = s.End.Format("15:04")
		}
		fmt.Fprintf(w, "%-16s | %-5s | %-8s | %s\n",
			s.Start.Format("2006-01-02 15:04"), end, FormatDuration(s.Duration(now)), s.Objective)
	}
}

func renderDays(w io.Writer, sessions []models.Session, now time.Time) {
	fmt.Fprintf(w, "%-16s | %s\n", "Date", "Duration")
	for _, day := range AggregateByDay(sessions, now) {
		fmt.Fprintf(w, "%-16s | %s\n", day.Date, FormatDuration(day.Total))
	}
}

// FormatDuration renders a duration as HH:MM, the format used for all
// report totals.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
