package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/dashboard"
)

type productsState int

const (
	productsStateBrowse productsState = iota
	productsStateForm
	productsStateConfirmDelete
	productsStateSaving
)

// productFields holds the form bindings. It lives behind a pointer so the
// bindings survive copies of the model.
type productFields struct {
	ID      string
	Name    string
	Price   string
	Stock   string
	Confirm bool
}

type ProductsModel struct {
	catalog *catalog.Service

	state    productsState
	table    table.Model
	products []catalog.Product
	form     *huh.Form
	fields   *productFields

	status string
	err    error
}

func NewProductsModel(svc *catalog.Service) ProductsModel {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Price", Width: 10},
		{Title: "Stock", Width: 8},
		{Title: "", Width: 10},
	}

	return ProductsModel{
		catalog: svc,
		table:   newTable(columns, 15),
		fields:  &productFields{},
	}
}

func (m ProductsModel) Title() string { return "Products" }

func (m ProductsModel) ShortHelp() string {
	switch m.state {
	case productsStateSaving:
		return "Saving..."
	case productsStateForm, productsStateConfirmDelete:
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add | e: edit | d: delete"
}

func (m ProductsModel) Init() tea.Cmd {
	return m.loadCmd()
}

type productsLoadedMsg struct {
	products []catalog.Product
}

type productSavedMsg struct {
	action string
	err    error
}

func (m ProductsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return productsLoadedMsg{products: m.catalog.List()}
	}
}

func (m ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.products = msg.products
		m.refreshTable()

		return m, nil

	case productSavedMsg:
		m.err = msg.err
		m.status = ""

		if msg.err == nil {
			m.status = msg.action
		}

		m.state = productsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case productsStateBrowse:
		return m.updateBrowse(msg)
	case productsStateSaving:
		return m, nil
	}

	return m.updateForm(msg)
}

func (m ProductsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			*m.fields = productFields{}
			return m.openForm(productsStateForm, m.productForm())
		case "e":
			p, ok := m.selected()
			if !ok {
				return m, nil
			}

			*m.fields = productFields{
				ID:    p.ID,
				Name:  p.Name,
				Price: strconv.FormatFloat(p.Price, 'f', -1, 64),
				Stock: strconv.Itoa(p.Stock),
			}

			return m.openForm(productsStateForm, m.productForm())
		case "d":
			p, ok := m.selected()
			if !ok {
				return m, nil
			}

			*m.fields = productFields{ID: p.ID, Name: p.Name}

			return m.openForm(productsStateConfirmDelete, huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete %s?", p.Name)).
						Affirmative("Delete").
						Negative("Keep").
						Value(&m.fields.Confirm),
				),
			))
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ProductsModel) openForm(state productsState, form *huh.Form) (tea.Model, tea.Cmd) {
	m.form = form.WithWidth(45).WithShowHelp(false)
	m.state = state
	m.status = ""
	m.err = nil
	m.table.Blur()

	return m, m.form.Init()
}

func (m ProductsModel) productForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.fields.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Key("price").
				Title("Price").
				Placeholder("1.50").
				Value(&m.fields.Price).
				Validate(validatePrice),
			huh.NewInput().
				Key("stock").
				Title("Stock").
				Placeholder("0").
				Value(&m.fields.Stock).
				Validate(validateStock),
		),
	)
}

func (m ProductsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = productsStateBrowse
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

	write := m.saveCmd()
	if m.state == productsStateConfirmDelete {
		write = m.deleteCmd()
	}

	// The form stays completed, so it must not be consulted again.
	m.form = nil
	m.state = productsStateSaving

	return m, write
}

func (m ProductsModel) saveCmd() tea.Cmd {
	f := *m.fields

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		price, stock := parsePrice(f.Price), parseStock(f.Stock)

		if f.ID == "" {
			p, err := m.catalog.AddProduct(ctx, catalog.AddParams{Name: f.Name, Price: price, Stock: stock})
			if err != nil {
				return productSavedMsg{err: err}
			}

			return productSavedMsg{action: fmt.Sprintf("Added %s.", p.Name)}
		}

		err := m.catalog.UpdateProduct(ctx, f.ID, catalog.UpdateParams{
			Name:  &f.Name,
			Price: &price,
			Stock: &stock,
		})

		return productSavedMsg{action: fmt.Sprintf("Saved %s.", f.Name), err: err}
	}
}

func (m ProductsModel) deleteCmd() tea.Cmd {
	f := *m.fields

	return func() tea.Msg {
		if !f.Confirm {
			return productSavedMsg{}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		err := m.catalog.DeleteProduct(ctx, f.ID)

		return productSavedMsg{action: fmt.Sprintf("Deleted %s.", f.Name), err: err}
	}
}

func (m ProductsModel) selected() (catalog.Product, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return catalog.Product{}, false
	}

	return m.products[idx], true
}

func (m *ProductsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.products))
	for _, p := range m.products {
		flag := ""
		if p.Stock <= dashboard.LowStockThreshold {
			flag = "low stock"
		}

		rows = append(rows, table.Row{p.Name, FormatPrice(p.Price), strconv.Itoa(p.Stock), flag})
	}

	m.table.SetRows(rows)
}

func (m ProductsModel) View() string {
	content := boxStyle.Render(m.table.View())

	if m.state != productsStateBrowse && m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Render(m.form.View()))
	}

	switch {
	case m.err != nil:
		content = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + content
	case m.status != "":
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(m.Title()), "", content),
	)
}
