package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

type HistoryModel struct {
	sales *sale.Service

	search textinput.Model
	table  table.Model
	rows   []sale.Sale
}

func NewHistoryModel(svc *sale.Service) HistoryModel {
	ti := textinput.New()
	ti.Placeholder = "product or payment method"
	ti.Prompt = "Search: "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Items", Width: 36},
		{Title: "Payment", Width: 12},
		{Title: "Total", Width: 10},
		{Title: "Note", Width: 20},
	}

	return HistoryModel{
		sales:  svc,
		search: ti,
		table:  newTable(columns, 15),
	}
}

func (m HistoryModel) Title() string { return "Sales History" }

func (m HistoryModel) ShortHelp() string {
	return "Type to filter | ↑/↓: scroll | Esc: back"
}

func (m HistoryModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.filterCmd(""))
}

type historyLoadedMsg struct {
	query string
	sales []sale.Sale
}

func (m HistoryModel) filterCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{query: query, sales: m.sales.List(sale.ListFilter{Query: query})}
	}
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		// Results for a query the user already moved past are dropped.
		if msg.query != m.search.Value() {
			return m, nil
		}

		m.rows = msg.sales
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)

			return m, cmd
		}
	}

	before := m.search.Value()

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != before {
		return m, tea.Batch(cmd, m.filterCmd(m.search.Value()))
	}

	return m, cmd
}

func (m *HistoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, s := range m.rows {
		rows = append(rows, table.Row{
			FormatDate(s.Date),
			describeItems(s.Items),
			string(s.PaymentMethod),
			FormatPrice(s.Total),
			s.Note,
		})
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

func describeItems(items []sale.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
	}

	return strings.Join(parts, ", ")
}

func (m HistoryModel) View() string {
	var total float64
	for _, s := range m.rows {
		total += s.Total
	}

	footer := faintStyle.Render(fmt.Sprintf("%d sales, %s", len(m.rows), FormatPrice(total)))
	if len(m.rows) == 0 {
		footer = faintStyle.Render("No sales match.")
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.Title()),
			"",
			m.search.View(),
			boxStyle.Render(m.table.View()),
			footer,
		),
	)
}
