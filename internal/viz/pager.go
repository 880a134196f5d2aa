package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/escapetime/internal/orbit"
	"github.com/san-kum/escapetime/internal/trace"
)

const defaultPageHeight = 20

// Pager is a Bubble Tea model over an already computed orbit.
type Pager struct {
	records []orbit.Record
	outcome orbit.Outcome
	cursor  int
	offset  int
	height  int
	width   int
}

func NewPager(records []orbit.Record, out orbit.Outcome) Pager {
	return Pager{
		records: records,
		outcome: out,
		height:  defaultPageHeight,
		width:   100,
	}
}

func (m Pager) Cursor() int { return m.cursor }

func (m Pager) Init() tea.Cmd { return nil }

func (m Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.move(1)
		case "up", "k":
			m.move(-1)
		case "pgdown", " ":
			m.move(m.height)
		case "pgup":
			m.move(-m.height)
		case "g", "home":
			m.move(-len(m.records))
		case "G", "end":
			m.move(len(m.records))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// title, sparkline, separator and footer
		m.height = max(msg.Height-5, 1)
		m.move(0)
	}
	return m, nil
}

func (m *Pager) move(delta int) {
	if len(m.records) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.records)-1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m Pager) View() string {
	var b strings.Builder

	b.WriteString(Title.Render(fmt.Sprintf("orbit  %d records", len(m.records))) + "\n")
	mags := make([]float64, len(m.records))
	for i, r := range m.records {
		mags[i] = r.Mag2()
	}
	b.WriteString(SparklineChart(mags, min(m.width, 80)) + "\n")
	b.WriteString(Separator(min(m.width, 80)) + "\n")

	if len(m.records) == 0 {
		b.WriteString(Subtle.Render("no records") + "\n")
	}

	end := min(m.offset+m.height, len(m.records))
	for i := m.offset; i < end; i++ {
		line := trace.Line(m.records[i])
		if i == m.cursor {
			line = Highlight.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		if m.outcome.Escaped && m.records[i].Step == m.outcome.EscapeStep {
			b.WriteString(StatusEscaped.Render("  "+trace.EscapeLine(m.outcome.EscapeStep)) + "\n")
		}
	}

	b.WriteString(KeyHint.Render("j/k move  pgup/pgdown page  g/G ends  q quit"))
	return b.String()
}

// RunPager blocks until the user quits.
func RunPager(records []orbit.Record, out orbit.Outcome) error {
	_, err := tea.NewProgram(NewPager(records, out), tea.WithAltScreen()).Run()
	return err
}
