package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gelato/internal/shop"
)

type settingsState int

const (
	settingsStateMenu settingsState = iota
	settingsStateExportPath
	settingsStateExporting
	settingsStateConfirmReset
	settingsStateResetting
	settingsStateResult
)

const (
	actionExport = "export"
	actionReset  = "reset"
)

type settingsFields struct {
	Action  string
	Dir     string
	Confirm bool
}

type SettingsModel struct {
	shop *shop.Shop

	state   settingsState
	form    *huh.Form
	fields  *settingsFields
	spinner spinner.Model
	result  string
}

func NewSettingsModel(s *shop.Shop) SettingsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := SettingsModel{
		shop:    s,
		fields:  &settingsFields{Action: actionExport, Dir: defaultExportDir},
		spinner: sp,
	}
	m.form = m.menuForm()

	return m
}

func (m SettingsModel) Title() string { return "Settings" }

func (m SettingsModel) ShortHelp() string {
	switch m.state {
	case settingsStateExporting:
		return "Exporting..."
	case settingsStateResetting:
		return "Resetting..."
	case settingsStateResult:
		return "Esc: back"
	}

	return "Esc: back | Enter: confirm"
}

func (m SettingsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SettingsModel) menuForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("What would you like to do?").
				Options(
					huh.NewOption("Export products and sales to CSV", actionExport),
					huh.NewOption("Reset all data", actionReset),
				).
				Value(&m.fields.Action),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m SettingsModel) resetForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete every product, customer, sale and expense?").
				Description("The default catalog is restored. This cannot be undone.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&m.fields.Confirm),
		),
	).WithWidth(50).WithShowHelp(false)
}

type resetResultMsg struct {
	err error
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportResultMsg:
		m.state = settingsStateResult
		m.result = renderExportResult(msg)

		return m, nil

	case resetResultMsg:
		m.state = settingsStateResult

		switch {
		case errors.Is(msg.err, shop.ErrNotConfirmed):
			m.result = faintStyle.Render("Reset cancelled.")
		case msg.err != nil:
			m.result = errorStyle.Render(fmt.Sprintf("Error: %v", msg.err))
		default:
			m.result = successStyle.Render("All data was reset.")
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}
	}

	switch m.state {
	case settingsStateExporting, settingsStateResetting:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case settingsStateResult:
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m.advance()
}

func (m SettingsModel) advance() (tea.Model, tea.Cmd) {
	switch m.state {
	case settingsStateMenu:
		if m.fields.Action == actionReset {
			m.fields.Confirm = false
			m.form = m.resetForm()
			m.state = settingsStateConfirmReset

			return m, m.form.Init()
		}

		m.form = buildExportForm(&m.fields.Dir)
		m.state = settingsStateExportPath

		return m, m.form.Init()

	case settingsStateExportPath:
		m.state = settingsStateExporting

		return m, tea.Batch(m.spinner.Tick, runExportCmd(m.shop.Export, m.shop.Sales, m.fields.Dir))

	case settingsStateConfirmReset:
		confirmed := m.fields.Confirm
		m.state = settingsStateResetting

		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			ctx, cancel := DbCtx()
			defer cancel()

			return resetResultMsg{err: m.shop.Reset(ctx, confirmed)}
		})
	}

	return m, nil
}

func (m SettingsModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case settingsStateMenu:
		return m, Back
	case settingsStateExporting, settingsStateResetting:
		return m, nil
	}

	m.state = settingsStateMenu
	m.result = ""
	m.form = m.menuForm()

	return m, m.form.Init()
}

func (m SettingsModel) View() string {
	var content string

	switch m.state {
	case settingsStateExporting:
		content = fmt.Sprintf("%s Writing CSV files to %s...", m.spinner.View(), m.fields.Dir)
	case settingsStateResetting:
		content = fmt.Sprintf("%s Resetting...", m.spinner.View())
	case settingsStateResult:
		content = m.result + "\n\n" + faintStyle.Render("(Esc to go back)")
	default:
		content = m.form.View()
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(m.Title()), "", content),
	)
}
