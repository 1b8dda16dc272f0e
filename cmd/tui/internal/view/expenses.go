package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gelato/internal/expense"
)

type expenseFields struct {
	Description string
	Amount      string
}

type ExpensesModel struct {
	expenses *expense.Service

	adding bool
	saving bool
	table  table.Model
	form   *huh.Form
	fields *expenseFields
	total  float64
	status string
	err    error
}

func NewExpensesModel(svc *expense.Service) ExpensesModel {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Description", Width: 32},
		{Title: "Amount", Width: 10},
	}

	return ExpensesModel{
		expenses: svc,
		table:    newTable(columns, 15),
		fields:   &expenseFields{},
	}
}

func (m ExpensesModel) Title() string { return "Expenses" }

func (m ExpensesModel) ShortHelp() string {
	switch {
	case m.saving:
		return "Saving..."
	case m.adding:
		return "Navigate form | Esc: cancel"
	}

	return "a: add expense | Esc: back"
}

func (m ExpensesModel) Init() tea.Cmd {
	return m.loadCmd()
}

type expensesLoadedMsg struct {
	expenses []expense.Expense
	total    float64
}

type expenseSavedMsg struct {
	expense *expense.Expense
	err     error
}

func (m ExpensesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return expensesLoadedMsg{expenses: m.expenses.List(), total: m.expenses.Total()}
	}
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		rows := make([]table.Row, 0, len(msg.expenses))
		for _, e := range msg.expenses {
			rows = append(rows, table.Row{FormatDate(e.Date), e.Description, FormatPrice(e.Amount)})
		}

		m.table.SetRows(rows)
		m.total = msg.total

		return m, nil

	case expenseSavedMsg:
		m.adding = false
		m.saving = false
		m.form = nil
		m.table.Focus()
		m.err = msg.err
		m.status = ""

		if msg.expense != nil {
			m.status = fmt.Sprintf("Recorded %s (%s).", msg.expense.Description, FormatPrice(msg.expense.Amount))
		}

		return m, m.loadCmd()
	}

	if m.saving {
		return m, nil
	}

	if m.adding {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			*m.fields = expenseFields{}
			m.form = huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Key("description").
						Title("Description").
						Value(&m.fields.Description).
						Validate(validateRequired("description")),
					huh.NewInput().
						Key("amount").
						Title("Amount").
						Placeholder("12.50").
						Value(&m.fields.Amount).
						Validate(validatePrice),
				),
			).WithWidth(45).WithShowHelp(false)
			m.adding = true
			m.status = ""
			m.err = nil
			m.table.Blur()

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ExpensesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.adding = false
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	f := *m.fields

	m.form = nil
	m.saving = true

	return m, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		e, err := m.expenses.AddExpense(ctx, f.Description, parsePrice(f.Amount))

		return expenseSavedMsg{expense: e, err: err}
	}
}

func (m ExpensesModel) View() string {
	content := boxStyle.Render(m.table.View())

	if m.adding && m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Render(m.form.View()))
	}

	switch {
	case m.err != nil:
		content = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + content
	case m.status != "":
		content = successStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.Title()),
			"",
			content,
			faintStyle.Render(fmt.Sprintf("Total expenses: %s", FormatPrice(m.total))),
		),
	)
}
