package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	importService *importer.Service

	state      importState
	filePicker filepicker.Model
	imported   []catalog.Product

	status string
	err    error
}

func NewImportModel(svc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService: svc,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Products" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateResult {
		return "Esc: pick another file"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

type importResultMsg struct {
	products []catalog.Product
	err      error
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case importResultMsg:
		m.state = importStateResult
		m.err = msg.err
		m.imported = msg.products

		if msg.err == nil {
			m.status = fmt.Sprintf("Imported %d products.", len(msg.products))
		}

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateResult:
		m.state = importStateFilePick
		m.err = nil
		m.status = ""
		m.imported = nil

		return m, m.filePicker.Init()
	case importStateImporting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		products, err := m.importService.Import(ctx, f)

		return importResultMsg{products: products, err: err}
	}
}

func (m ImportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case importStateFilePick:
		return style.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render(m.Title()),
				faintStyle.Render("CSV with name/price/stock columns (also nom/prix/stock, produit/prix/quantité)"),
				"",
				m.filePicker.View(),
			),
		)
	case importStateImporting:
		return style.Render(m.status)
	case importStateResult:
		return style.Render(m.viewResult())
	}

	return ""
}

func (m ImportModel) viewResult() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)"
	}

	var b strings.Builder

	b.WriteString(successStyle.Render(m.status))
	b.WriteString("\n\n")

	for _, p := range m.imported {
		b.WriteString(fmt.Sprintf("  %-28s %10s  %4d\n", p.Name, FormatPrice(p.Price), p.Stock))
	}

	b.WriteString("\n(Esc to go back)")

	return b.String()
}
