package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-citecomm/pkg/community"
	"github.com/dd0wney/cluso-citecomm/pkg/pipeline"
	"github.com/dd0wney/cluso-citecomm/pkg/report"
)

type view int

const (
	dashboardView view = iota
	communitiesView
	detailView
	searchView
	viewCount
)

var tabNames = []string{"Dashboard", "Communities", "Detail", "Search"}

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Back     key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter, k.Back},
		{k.Up, k.Down},
		{k.Quit},
	}
}

type model struct {
	result      *pipeline.Result
	alpha       float64
	currentView view
	communities table.Model
	subfields   table.Model
	searchInput textinput.Model
	searchTable table.Model
	selected    int
	help        help.Model
	keys        keyMap
	width       int
	height      int
	message     string
	messageErr  bool
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func initialModel(result *pipeline.Result, alpha float64) model {
	ti := textinput.New()
	ti.Placeholder = "subfield, e.g. hep-th"
	ti.CharLimit = 100
	ti.Width = 40

	m := model{
		result:      result,
		alpha:       alpha,
		currentView: dashboardView,
		communities: newTable([]table.Column{
			{Title: "ID", Width: 8},
			{Title: "Papers", Width: 8},
			{Title: "Dominant", Width: 20},
			{Title: "Share %", Width: 8},
			{Title: "Density", Width: 9},
			{Title: "Significant", Width: 30},
		}),
		subfields: newTable([]table.Column{
			{Title: "Subfield", Width: 20},
			{Title: "Count", Width: 8},
			{Title: "Odds Ratio", Width: 11},
			{Title: "P-value", Width: 10},
			{Title: "", Width: 3},
		}),
		searchInput: ti,
		searchTable: newTable([]table.Column{
			{Title: "Community", Width: 10},
			{Title: "Count", Width: 8},
			{Title: "Odds Ratio", Width: 11},
			{Title: "P-value", Width: 10},
		}),
		selected: -1,
		help:     help.New(),
		keys:     keys,
	}
	m.communities.SetRows(m.communityRows())
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit) && !(m.currentView == searchView && msg.String() == "q"):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.setView((m.currentView + 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.setView((m.currentView + viewCount - 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if m.currentView == detailView {
				m.setView(communitiesView)
				return m, nil
			}

		case key.Matches(msg, m.keys.Enter):
			switch m.currentView {
			case communitiesView:
				m.openSelected()
				return m, nil
			case searchView:
				m.runSearch()
				return m, nil
			}
		}
	}

	switch m.currentView {
	case communitiesView:
		m.communities, cmd = m.communities.Update(msg)
		cmds = append(cmds, cmd)
	case detailView:
		m.subfields, cmd = m.subfields.Update(msg)
		cmds = append(cmds, cmd)
	case searchView:
		m.searchInput, cmd = m.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) setView(v view) {
	m.currentView = v
	if v == searchView {
		m.searchInput.Focus()
	} else {
		m.searchInput.Blur()
	}
}

// openSelected shows the subfields of the highlighted community
func (m *model) openSelected() {
	row := m.communities.SelectedRow()
	if row == nil {
		return
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return
	}
	m.selectCommunity(id)
}

func (m *model) selectCommunity(id int) {
	record, ok := m.result.Stats.Get(id)
	if !ok {
		m.message = fmt.Sprintf("Community %d not found", id)
		m.messageErr = true
		return
	}

	m.selected = id
	m.subfields.SetRows(subfieldRows(record, m.alpha))
	m.subfields.GotoTop()
	m.message = ""
	m.setView(detailView)
}

// runSearch lists every community containing the searched subfield,
// most significant first
func (m *model) runSearch() {
	subfield := strings.TrimSpace(m.searchInput.Value())
	if subfield == "" {
		m.message = "Search cannot be empty"
		m.messageErr = true
		return
	}

	type hit struct {
		id     int
		record *community.Stats
	}
	hits := make([]hit, 0)
	for _, id := range m.result.Stats.IDs() {
		record := m.result.Stats.Communities[id]
		if record.Subfields.Has(subfield) {
			hits = append(hits, hit{id: id, record: record})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].record.FisherResults[subfield].PValue < hits[j].record.FisherResults[subfield].PValue
	})

	rows := make([]table.Row, 0, len(hits))
	for _, h := range hits {
		result := h.record.FisherResults[subfield]
		rows = append(rows, table.Row{
			strconv.Itoa(h.id),
			strconv.Itoa(h.record.Subfields.Get(subfield)),
			fixed(result.OddsRatio, 2),
			fixed(result.PValue, 4),
		})
	}
	m.searchTable.SetRows(rows)

	if len(rows) == 0 {
		m.message = fmt.Sprintf("No community contains %q", subfield)
		m.messageErr = true
		return
	}
	m.message = fmt.Sprintf("%q appears in %d communities", subfield, len(rows))
	m.messageErr = false
}

func (m model) communityRows() []table.Row {
	stats := m.result.Stats
	rows := make([]table.Row, 0, stats.Len())
	for _, id := range stats.IDs() {
		record := stats.Communities[id]
		rows = append(rows, table.Row{
			strconv.Itoa(id),
			strconv.Itoa(record.Count),
			record.DominantSubfield,
			fixed(record.DominantPercentage, 2),
			fixed(record.EdgeDensity, 4),
			strings.Join(record.SignificantSubfields(m.alpha), ", "),
		})
	}
	return rows
}

func subfieldRows(record *community.Stats, alpha float64) []table.Row {
	significant := make(map[string]bool)
	for _, subfield := range record.SignificantSubfields(alpha) {
		significant[subfield] = true
	}

	rows := make([]table.Row, 0, record.Subfields.Len())
	for _, subfield := range record.Subfields.Keys() {
		result := record.FisherResults[subfield]
		mark := ""
		if significant[subfield] {
			mark = "*"
		}
		rows = append(rows, table.Row{
			subfield,
			strconv.Itoa(record.Subfields.Get(subfield)),
			fixed(result.OddsRatio, 2),
			fixed(result.PValue, 4),
			mark,
		})
	}
	return rows
}

func fixed(v float64, decimals int) string {
	return report.FormatFixed(v, decimals)
}
