package view

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gelato/internal/cart"
	"github.com/MrJamesThe3rd/gelato/internal/catalog"
	"github.com/MrJamesThe3rd/gelato/internal/checkout"
	"github.com/MrJamesThe3rd/gelato/internal/sale"
)

type posState int

const (
	posStateCatalog posState = iota
	posStateCart
	posStateCheckout
	posStateSubmitting
)

type checkoutFields struct {
	Name    string
	Phone   string
	Method  string
	Note    string
	Confirm bool
}

type POSModel struct {
	catalog  *catalog.Service
	checkout *checkout.Service

	state        posState
	cart         *cart.Cart
	products     []catalog.Product
	catalogTable table.Model
	cartTable    table.Model
	form         *huh.Form
	fields       *checkoutFields

	status string
	err    error
}

func NewPOSModel(catalogSvc *catalog.Service, checkoutSvc *checkout.Service) POSModel {
	catalogTable := newTable([]table.Column{
		{Title: "Product", Width: 22},
		{Title: "Price", Width: 9},
		{Title: "Stock", Width: 6},
	}, 12)

	cartTable := newTable([]table.Column{
		{Title: "Item", Width: 20},
		{Title: "Qty", Width: 4},
		{Title: "Subtotal", Width: 10},
	}, 12)
	cartTable.Blur()

	return POSModel{
		catalog:      catalogSvc,
		checkout:     checkoutSvc,
		cart:         cart.New(),
		catalogTable: catalogTable,
		cartTable:    cartTable,
		fields:       &checkoutFields{Method: string(sale.PaymentCash)},
	}
}

func (m POSModel) Title() string { return "Point of Sale" }

func (m POSModel) ShortHelp() string {
	switch m.state {
	case posStateCart:
		return "Tab: catalog | +/-: quantity | x: remove | c: checkout | Esc: back"
	case posStateCheckout:
		return "Navigate form | Esc: cancel"
	case posStateSubmitting:
		return "Recording sale..."
	}

	return "Tab: cart | Enter: add to cart | c: checkout | Esc: back"
}

func (m POSModel) Init() tea.Cmd {
	return m.loadCmd()
}

type posCatalogMsg struct {
	products []catalog.Product
}

type checkoutDoneMsg struct {
	sale *sale.Sale
	err  error
}

func (m POSModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return posCatalogMsg{products: m.catalog.List()}
	}
}

func (m POSModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case posCatalogMsg:
		m.products = msg.products
		m.refreshCatalog()

		return m, nil

	case checkoutDoneMsg:
		m.state = posStateCatalog
		m.form = nil
		m.catalogTable.Focus()
		m.refreshCart()

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		if msg.sale != nil {
			m.status = fmt.Sprintf("Sale recorded: %s (%s).", FormatPrice(msg.sale.Total), msg.sale.PaymentMethod)
		}

		return m, m.loadCmd()
	}

	switch m.state {
	case posStateCatalog:
		return m.updateCatalog(msg)
	case posStateCart:
		return m.updateCart(msg)
	case posStateCheckout:
		return m.updateCheckout(msg)
	case posStateSubmitting:
		return m, nil
	}

	return m, nil
}

func (m POSModel) updateCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "tab":
			m.state = posStateCart
			m.catalogTable.Blur()
			m.cartTable.Focus()

			return m, nil
		case "c":
			return m.openCheckout()
		case "enter", " ":
			idx := m.catalogTable.Cursor()
			if idx < 0 || idx >= len(m.products) {
				return m, nil
			}

			p := m.products[idx]
			m.err = nil
			m.status = ""

			if err := m.cart.Add(p); err != nil {
				if errors.Is(err, cart.ErrOutOfStock) {
					m.status = fmt.Sprintf("%s is out of stock.", p.Name)
					return m, nil
				}

				m.err = err

				return m, nil
			}

			m.refreshCart()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.catalogTable, cmd = m.catalogTable.Update(msg)

	return m, cmd
}

func (m POSModel) updateCart(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		lines := m.cart.Lines()
		idx := m.cartTable.Cursor()

		var line *cart.Line
		if idx >= 0 && idx < len(lines) {
			line = &lines[idx]
		}

		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "tab":
			m.state = posStateCatalog
			m.cartTable.Blur()
			m.catalogTable.Focus()

			return m, nil
		case "c":
			return m.openCheckout()
		case "+", "=":
			if line != nil {
				m.cart.SetQuantity(line.ProductID, line.Quantity+1)
			}

			m.refreshCart()

			return m, nil
		case "-":
			if line != nil {
				m.cart.SetQuantity(line.ProductID, line.Quantity-1)
			}

			m.refreshCart()

			return m, nil
		case "x", "delete":
			if line != nil {
				m.cart.SetQuantity(line.ProductID, 0)
			}

			m.refreshCart()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.cartTable, cmd = m.cartTable.Update(msg)

	return m, cmd
}

func (m POSModel) openCheckout() (tea.Model, tea.Cmd) {
	if m.cart.IsEmpty() {
		m.status = "The cart is empty."
		return m, nil
	}

	*m.fields = checkoutFields{Method: string(sale.PaymentCash)}

	methods := make([]huh.Option[string], 0, len(sale.PaymentMethods))
	for _, pm := range sale.PaymentMethods {
		methods = append(methods, huh.NewOption(string(pm), string(pm)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("name").Title("Customer name").Placeholder("optional").Value(&m.fields.Name),
			huh.NewInput().Key("phone").Title("Phone").Placeholder("optional").Value(&m.fields.Phone),
			huh.NewSelect[string]().Key("method").Title("Payment").Options(methods...).Value(&m.fields.Method),
			huh.NewInput().Key("note").Title("Note").Value(&m.fields.Note),
			huh.NewConfirm().
				Title(fmt.Sprintf("Charge %s?", FormatPrice(m.cart.Total()))).
				Affirmative("Confirm").
				Negative("Cancel").
				Value(&m.fields.Confirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = posStateCheckout
	m.status = ""
	m.err = nil
	m.catalogTable.Blur()
	m.cartTable.Blur()

	return m, m.form.Init()
}

func (m POSModel) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = posStateCatalog
		m.form = nil
		m.catalogTable.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	submit := m.checkoutCmd()
	m.form = nil
	m.state = posStateSubmitting

	return m, submit
}

func (m POSModel) checkoutCmd() tea.Cmd {
	f := *m.fields
	c := m.cart

	return func() tea.Msg {
		if !f.Confirm {
			return checkoutDoneMsg{}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.checkout.Checkout(ctx, c, checkout.Request{
			CustomerName:  f.Name,
			CustomerPhone: f.Phone,
			PaymentMethod: f.Method,
			Note:          f.Note,
		})

		return checkoutDoneMsg{sale: s, err: err}
	}
}

func (m *POSModel) refreshCatalog() {
	rows := make([]table.Row, 0, len(m.products))
	for _, p := range m.products {
		stock := strconv.Itoa(p.Stock)
		if p.Stock <= 0 {
			stock = "out"
		}

		rows = append(rows, table.Row{p.Name, FormatPrice(p.Price), stock})
	}

	m.catalogTable.SetRows(rows)
}

func (m *POSModel) refreshCart() {
	lines := m.cart.Lines()

	rows := make([]table.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, table.Row{l.Name, strconv.Itoa(l.Quantity), FormatPrice(l.Subtotal())})
	}

	m.cartTable.SetRows(rows)

	if n := len(rows); n > 0 && m.cartTable.Cursor() >= n {
		m.cartTable.SetCursor(n - 1)
	}
}

func (m POSModel) View() string {
	catalogLabel, cartLabel := "Catalog", "Cart"

	switch m.state {
	case posStateCatalog:
		catalogLabel = activeStyle(catalogLabel)
	case posStateCart:
		cartLabel = activeStyle(cartLabel)
	}

	catalogView := lipgloss.JoinVertical(lipgloss.Left,
		catalogLabel,
		boxStyle.Render(m.catalogTable.View()),
	)

	cartView := lipgloss.JoinVertical(lipgloss.Left,
		cartLabel,
		boxStyle.Render(m.cartTable.View()),
		titleStyle.Render(fmt.Sprintf("Total: %s", FormatPrice(m.cart.Total()))),
	)

	content := lipgloss.JoinHorizontal(lipgloss.Top, catalogView, "  ", cartView)

	if m.state == posStateCheckout && m.form != nil {
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
