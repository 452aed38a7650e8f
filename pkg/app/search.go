package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/kerbaras/audiobooks/pkg/app/styles"
	"github.com/kerbaras/audiobooks/pkg/data"
)

// SearchFunc runs the provider search for a phrase.
type SearchFunc func(phrase string) ([]data.SearchResult, error)

// RunSearch shows the interactive search screen and returns the result
// the user picked, or nil if they quit without choosing.
func RunSearch(search SearchFunc, initial string) (*data.SearchResult, error) {
	p := tea.NewProgram(newSearchModel(search, initial))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := final.(searchModel)
	return m.chosen, nil
}

type resultsMsg struct {
	results []data.SearchResult
	err     error
}

type searchModel struct {
	search SearchFunc

	input textinput.Model
	spin  spinner.Model

	searching bool
	searched  bool
	results   []data.SearchResult
	visible   []data.SearchResult
	selected  int
	focusList bool
	chosen    *data.SearchResult
	err       error
	width     int
}

func newSearchModel(search SearchFunc, initial string) searchModel {
	ti := textinput.New()
	ti.Placeholder = "Search audiobooks..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50
	ti.SetValue(initial)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SubtitleStyle

	return searchModel{search: search, input: ti, spin: sp, searching: initial != ""}
}

func (m searchModel) Init() tea.Cmd {
	if m.input.Value() != "" {
		return tea.Batch(textinput.Blink, m.doSearch(m.input.Value()), m.spin.Tick)
	}
	return textinput.Blink
}

func (m searchModel) doSearch(phrase string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.search(phrase)
		return resultsMsg{results: results, err: err}
	}
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case resultsMsg:
		m.searching = false
		m.searched = true
		m.err = msg.err
		m.results = msg.results
		m.visible = msg.results
		m.selected = 0
		m.focusList = len(m.visible) > 0
		if m.focusList {
			m.input.Blur()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if len(m.visible) > 0 {
				m.focusList = !m.focusList
				if m.focusList {
					m.input.Blur()
				} else {
					m.input.Focus()
				}
			}
			return m, nil

		case "up", "k":
			if m.focusList && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "j":
			if m.focusList && m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if m.focusList && len(m.visible) > 0 {
				chosen := m.visible[m.selected]
				m.chosen = &chosen
				return m, tea.Quit
			}
			if phrase := strings.TrimSpace(m.input.Value()); phrase != "" {
				m.searching = true
				m.err = nil
				return m, tea.Batch(m.doSearch(phrase), m.spin.Tick)
			}
			return m, nil
		}

		if !m.focusList {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if m.searched {
				m.refilter()
			}
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// refilter narrows the current results by fuzzy-matching titles
// against the input, without hitting the network again.
func (m *searchModel) refilter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" || len(m.results) == 0 {
		m.visible = m.results
		m.selected = 0
		return
	}

	titles := make([]string, len(m.results))
	for i, r := range m.results {
		titles[i] = r.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	visible := make([]data.SearchResult, 0, len(ranks))
	for _, rank := range ranks {
		visible = append(visible, m.results[rank.OriginalIndex])
	}
	if len(visible) == 0 {
		visible = m.results
	}
	m.visible = visible
	m.selected = 0
}

func (m searchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🎧 Audiobook Search"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.searching:
		b.WriteString(m.spin.View())
		b.WriteString(styles.SubtitleStyle.Render(" searching providers..."))
		b.WriteString("\n")

	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Search failed: %v", m.err)))
		b.WriteString("\n")

	case m.searched && len(m.results) == 0:
		b.WriteString(styles.MutedStyle.Render("No matching audiobooks found."))
		b.WriteString("\n")

	default:
		for i, r := range m.visible {
			line := fmt.Sprintf("%s  %s", r.Title, styles.MutedStyle.Render(r.Link))
			if m.focusList && i == m.selected {
				line = styles.SelectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("enter: search/select • tab: switch focus • esc: quit"))
	b.WriteString("\n")
	return b.String()
}
