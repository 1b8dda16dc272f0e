package view

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/gelato/internal/export"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

const defaultExportDir = "./exports"

type exportResultMsg struct {
	files   []string
	summary string
	err     error
}

func buildExportForm(dir *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder(defaultExportDir).
				Value(dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

// runExportCmd writes both CSV files into dir and returns the sales summary.
func runExportCmd(svc *export.Service, sales *sale.Service, dir string) tea.Cmd {
	if strings.TrimSpace(dir) == "" {
		dir = defaultExportDir
	}

	return func() tea.Msg {
		files, err := svc.WriteFiles(dir)
		if err != nil {
			return exportResultMsg{err: err}
		}

		summary := svc.GenerateSummary(sales.List(sale.ListFilter{}))

		return exportResultMsg{files: files, summary: summary}
	}
}

func renderExportResult(msg exportResultMsg) string {
	if msg.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", msg.err))
	}

	var b strings.Builder

	b.WriteString(successStyle.Bold(true).Render("Export Complete!"))
	b.WriteString("\n\n")

	for _, f := range msg.files {
		b.WriteString(fmt.Sprintf("  %s\n", filepath.Clean(f)))
	}

	b.WriteString("\nSummary:\n\n")

	if msg.summary == "" {
		b.WriteString(faintStyle.Render("No sales yet."))
	} else {
		b.WriteString(msg.summary)
	}

	return b.String()
}
