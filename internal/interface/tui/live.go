package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// LiveModel shows the running session's elapsed time, recomputed once per
// second. Ctrl+C (or q/esc) quits the loop; the caller then closes the
// session.
type LiveModel struct {
	start     time.Time
	adopted   bool // picked up an already-open session
	objective string
	elapsed   time.Duration
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func NewLive(start time.Time, adopted bool, objective string) LiveModel {
	return LiveModel{
		start:     start,
		adopted:   adopted,
		objective: objective,
		elapsed:   time.Since(start),
	}
}

func (m LiveModel) Init() tea.Cmd {
	return tickCmd()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		m.elapsed = time.Time(msg).Sub(m.start)
		return m, tickCmd()
	}
	return m, nil
}

func (m LiveModel) View() string {
	caption := fmt.Sprintf("Tracking work starting now (%s)", m.start.Format("2006-01-02 15:04"))
	if m.adopted {
		caption = fmt.Sprintf("Tracking work started %s (%s)",
			humanize.Time(m.start), m.start.Format("2006-01-02 15:04"))
	}

	out := captionStyle.Render(caption) + "\n"
	if m.objective != "" {
		out += objectiveStyle.Render("Objective: "+m.objective) + "\n"
	}
	out += durationStyle.Render("Duration: "+FormatElapsed(m.elapsed)) + "\n"
	out += hintStyle.Render("Press Ctrl+C to stop tracking") + "\n"
	return out
}

// FormatElapsed renders an elapsed time as HH:MM:SS.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}
