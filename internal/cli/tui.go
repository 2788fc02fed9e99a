package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/temporalkit/tgmin/pkg/minimize"
	"github.com/temporalkit/tgmin/pkg/temporal"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// CorpusModel - Interactive corpus browsing
// =============================================================================

// corpusEntry is one graph row with its verdict once computed.
type corpusEntry struct {
	graph  *temporal.Graph
	result *minimize.Result
}

// CorpusModel is the bubbletea model for browsing a corpus and minimizing
// graphs on demand.
type CorpusModel struct {
	Entries []corpusEntry
	Config  minimize.Config
	Cursor  int
	Height  int
	Offset  int
}

// NewCorpusModel creates a corpus browser over the given graphs.
func NewCorpusModel(graphs []*temporal.Graph, cfg minimize.Config) CorpusModel {
	entries := make([]corpusEntry, len(graphs))
	for i, g := range graphs {
		entries[i] = corpusEntry{graph: g}
	}
	return CorpusModel{Entries: entries, Config: cfg, Height: 15}
}

func (m CorpusModel) Init() tea.Cmd {
	return nil
}

func (m CorpusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			entry := &m.Entries[m.Cursor]
			if entry.result == nil {
				// Minimization mutates the graph, so run on a clone and
				// keep the original browsable.
				res := minimize.RunWithConfig(entry.graph.Clone(), m.Config)
				entry.result = &res
			}
		case "a":
			for i := range m.Entries {
				if m.Entries[i].result == nil {
					res := minimize.RunWithConfig(m.Entries[i].graph.Clone(), m.Config)
					m.Entries[i].result = &res
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m CorpusModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Corpus Browser"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ minimize  a minimize all  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))
	for i := m.Offset; i < end; i++ {
		entry := m.Entries[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		labels := 0
		for _, key := range entry.graph.EdgeKeys() {
			times, _ := entry.graph.EdgeTimes(key.U(), key.V())
			labels += len(times)
		}

		line := fmt.Sprintf("#%-4d %2d vertices  %2d edges  %2d labels",
			i, entry.graph.VertexCount(), entry.graph.EdgeCount(), labels)

		verdict := listDimStyle.Render("—")
		if entry.result != nil {
			switch {
			case entry.result.Outcome == minimize.OutcomeMaxIterations:
				verdict = StyleWarning.Render("inconclusive")
			case entry.result.IsMinimal:
				verdict = StyleMinimal.Render("minimal")
			default:
				verdict = StyleNotMinimal.Render("not minimal")
			}
		}

		b.WriteString(cursor + style.Render(line) + "  " + verdict + "\n")
	}

	if len(m.Entries) > m.Height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d-%d of %d", m.Offset+1, end, len(m.Entries))))
		b.WriteString("\n")
	}

	return b.String()
}

// runCorpusBrowser opens the interactive corpus browser.
func runCorpusBrowser(graphs []*temporal.Graph, cfg minimize.Config) error {
	model := NewCorpusModel(graphs, cfg)
	_, err := tea.NewProgram(model).Run()
	return err
}
