package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gelato/internal/dashboard"
)

type Summarizer interface {
	Dashboard() dashboard.Summary
}

type DashboardModel struct {
	src     Summarizer
	summary dashboard.Summary
}

func NewDashboardModel(src Summarizer) DashboardModel {
	return DashboardModel{src: src}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

type dashboardMsg struct {
	summary dashboard.Summary
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return dashboardMsg{summary: m.src.Dashboard()}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardMsg:
		m.summary = msg.summary
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	s := m.summary

	card := func(label, value string) string {
		return boxStyle.Padding(0, 2).Width(22).Render(
			faintStyle.Render(label) + "\n" + titleStyle.Render(value),
		)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Revenue", FormatPrice(s.Revenue)),
		card("Sales", fmt.Sprintf("%d", s.SalesCount)),
		card("Stock value", FormatPrice(s.StockValue)),
	)

	net := FormatPrice(s.Net)
	if s.Net < 0 {
		net = errorStyle.Render(net)
	}

	totals := fmt.Sprintf("Expenses: %s    Net: %s", FormatPrice(s.Expenses), net)

	var low strings.Builder

	low.WriteString(fmt.Sprintf("Low stock (%d or less):\n", dashboard.LowStockThreshold))

	if len(s.LowStock) == 0 {
		low.WriteString(successStyle.Render("  All products are well stocked."))
	}

	for _, p := range s.LowStock {
		low.WriteString(warnStyle.Render(fmt.Sprintf("  %-24s %4d left", p.Name, p.Stock)) + "\n")
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.Title()),
			"",
			cards,
			"",
			totals,
			"",
			low.String(),
		),
	)
}
