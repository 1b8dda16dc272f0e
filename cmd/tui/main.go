package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gelato/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/gelato/internal/config"
	"github.com/MrJamesThe3rd/gelato/internal/shop"
)

type model struct {
	shop *shop.Shop

	currentView View
	active      view.View
	size        *tea.WindowSizeMsg
}

type View int

const (
	ViewMenu View = iota
	ViewDashboard
	ViewProducts
	ViewPOS
	ViewHistory
	ViewExpenses
	ViewImport
	ViewSettings
)

var menuKeys = map[string]View{
	"1": ViewDashboard,
	"2": ViewProducts,
	"3": ViewPOS,
	"4": ViewHistory,
	"5": ViewExpenses,
	"6": ViewImport,
	"7": ViewSettings,
}

func initialModel() (model, io.Closer) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, closer, err := shop.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	s, err := shop.Open(ctx, store, shop.Options{Currency: cfg.App.Currency})
	if err != nil {
		slog.Error("failed to load shop data", "error", err)
		os.Exit(1)
	}

	view.Currency = cfg.App.Currency

	return model{shop: s, currentView: ViewMenu}, closer
}

// newView builds a fresh screen so every visit starts from current data.
func (m model) newView(v View) view.View {
	switch v {
	case ViewDashboard:
		return view.NewDashboardModel(m.shop)
	case ViewProducts:
		return view.NewProductsModel(m.shop.Catalog)
	case ViewPOS:
		return view.NewPOSModel(m.shop.Catalog, m.shop.Checkout)
	case ViewHistory:
		return view.NewHistoryModel(m.shop.Sales)
	case ViewExpenses:
		return view.NewExpensesModel(m.shop.Expenses)
	case ViewImport:
		return view.NewImportModel(m.shop.Importer)
	case ViewSettings:
		return view.NewSettingsModel(m.shop)
	}

	return nil
}

// replaySize hands a freshly built view the terminal size, which bubbletea
// only sends at startup and on resize.
func (m model) replaySize() tea.Cmd {
	if m.size == nil {
		return nil
	}

	size := *m.size

	return func() tea.Msg { return size }
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = &msg
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			if msg.String() == "q" {
				return m, tea.Quit
			}

			v, ok := menuKeys[msg.String()]
			if !ok {
				return m, nil
			}

			m.currentView = v
			m.active = m.newView(v)

			return m, tea.Batch(m.active.Init(), m.replaySize())
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		m.active = nil

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	newModel, cmd := m.active.Update(msg)
	if v, ok := newModel.(view.View); ok {
		m.active = v
	}

	return m, cmd
}

func (m model) View() string {
	if m.currentView == ViewMenu || m.active == nil {
		return lipgloss.NewStyle().Padding(2).Render(
			"Gelato\n\n" +
				"1. Dashboard\n" +
				"2. Products\n" +
				"3. Point of Sale\n" +
				"4. Sales History\n" +
				"5. Expenses\n" +
				"6. Import Products\n" +
				"7. Settings\n\n" +
				"q. Quit",
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.active.View(),
		lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(m.active.ShortHelp()),
	)
}

func main() {
	m, closer := initialModel()
	defer closer.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		closer.Close()
		os.Exit(1)
	}
}
