package state

import (
	"fmt"
	"io"
	"sort"
)

// VendingState handles the vending machine's four operations.
type VendingState interface {
	Name() string
	InsertMoney(m *Machine, amount float64)
	EjectMoney(m *Machine)
	SelectProduct(m *Machine, product string)
	Dispense(m *Machine)
}

// product pairs a price with remaining stock.
type product struct {
	price float64
	stock int
}

// Machine is the vending machine context.
type Machine struct {
	out      io.Writer
	state    VendingState
	money    float64
	selected string
	products map[string]*product
}

// NewMachine returns a machine in the NoMoney state with the standard
// inventory, including one product that is already out of stock.
func NewMachine(out io.Writer) *Machine {
	return &Machine{
		out:   out,
		state: NoMoney{},
		products: map[string]*product{
			"Coke":  {price: 1.50, stock: 5},
			"Pepsi": {price: 1.50, stock: 3},
			"Chips": {price: 2.00, stock: 4},
			"Candy": {price: 1.00, stock: 0},
		},
	}
}

// StateName returns the active state's name.
func (m *Machine) StateName() string { return m.state.Name() }

// Money returns the balance currently held by the machine.
func (m *Machine) Money() float64 { return m.money }

// Stock returns the remaining stock of a product, or zero when unknown.
func (m *Machine) Stock(name string) int {
	if p, ok := m.products[name]; ok {
		return p.stock
	}
	return 0
}

func (m *Machine) setState(s VendingState) { m.state = s }

// price returns the product's price and whether the product exists.
func (m *Machine) price(name string) (float64, bool) {
	p, ok := m.products[name]
	if !ok {
		return 0, false
	}
	return p.price, true
}

func (m *Machine) inStock(name string) bool {
	p, ok := m.products[name]
	return ok && p.stock > 0
}

func (m *Machine) takeOne(name string) {
	if p, ok := m.products[name]; ok && p.stock > 0 {
		p.stock--
	}
}

// Operations delegate to the active state.

func (m *Machine) InsertMoney(amount float64)  { m.state.InsertMoney(m, amount) }
func (m *Machine) EjectMoney()                 { m.state.EjectMoney(m) }
func (m *Machine) SelectProduct(name string)   { m.state.SelectProduct(m, name) }
func (m *Machine) Dispense()                   { m.state.Dispense(m) }

// Status writes the machine's state, balance, selection, and inventory.
func (m *Machine) Status() {
	fmt.Fprintln(m.out, "\n📊 Machine Status:")
	fmt.Fprintf(m.out, "   State: %s\n", m.state.Name())
	fmt.Fprintf(m.out, "   Money: $%.2f\n", m.money)
	selected := m.selected
	if selected == "" {
		selected = "None"
	}
	fmt.Fprintf(m.out, "   Selected: %s\n", selected)
	fmt.Fprintln(m.out, "   Products:")

	names := make([]string, 0, len(m.products))
	for name := range m.products {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := m.products[name]
		fmt.Fprintf(m.out, "     - %s: $%.2f (Stock: %d)\n", name, p.price, p.stock)
	}
}

// NoMoney is the start state: nothing works until money is inserted.
type NoMoney struct{}

func (NoMoney) Name() string { return "NoMoney" }

func (NoMoney) InsertMoney(m *Machine, amount float64) {
	fmt.Fprintf(m.out, "💰 Inserted $%.2f\n", amount)
	m.money += amount
	m.setState(HasMoney{})
}

func (NoMoney) EjectMoney(m *Machine) {
	fmt.Fprintln(m.out, "❌ No money to eject")
}

func (NoMoney) SelectProduct(m *Machine, product string) {
	fmt.Fprintln(m.out, "❌ Please insert money first")
}

func (NoMoney) Dispense(m *Machine) {
	fmt.Fprintln(m.out, "❌ Please insert money first")
}

// HasMoney holds the balance until a product is selected or money ejected.
// Selecting with insufficient funds reports the exact shortfall and retains
// the balance.
type HasMoney struct{}

func (HasMoney) Name() string { return "HasMoney" }

func (HasMoney) InsertMoney(m *Machine, amount float64) {
	fmt.Fprintf(m.out, "💰 Inserted additional $%.2f\n", amount)
	m.money += amount
}

func (HasMoney) EjectMoney(m *Machine) {
	fmt.Fprintf(m.out, "💰 Ejecting $%.2f\n", m.money)
	m.money = 0
	m.setState(NoMoney{})
}

func (HasMoney) SelectProduct(m *Machine, name string) {
	price, ok := m.price(name)
	if !ok {
		fmt.Fprintf(m.out, "❌ Product '%s' not available\n", name)
		return
	}
	if m.money < price {
		fmt.Fprintf(m.out, "❌ Insufficient funds. Need $%.2f more\n", price-m.money)
		return
	}
	fmt.Fprintf(m.out, "✅ Selected %s ($%.2f)\n", name, price)
	m.selected = name
	m.setState(Sold{})
}

func (HasMoney) Dispense(m *Machine) {
	fmt.Fprintln(m.out, "❌ Please select a product first")
}

// Sold is the transient state between selection and dispensing.
type Sold struct{}

func (Sold) Name() string { return "Sold" }

func (Sold) InsertMoney(m *Machine, amount float64) {
	fmt.Fprintln(m.out, "⏳ Please wait, processing your order...")
}

func (Sold) EjectMoney(m *Machine) {
	fmt.Fprintln(m.out, "⏳ Cannot eject money, product already selected")
}

func (Sold) SelectProduct(m *Machine, product string) {
	fmt.Fprintln(m.out, "⏳ Please wait, processing your order...")
}

func (Sold) Dispense(m *Machine) {
	name := m.selected
	price, _ := m.price(name)

	if !m.inStock(name) {
		fmt.Fprintf(m.out, "❌ %s is out of stock\n", name)
		m.selected = ""
		m.setState(NoMoney{})
		return
	}

	fmt.Fprintf(m.out, "🎉 Dispensing %s...\n", name)
	m.takeOne(name)
	if change := m.money - price; change > 0 {
		fmt.Fprintf(m.out, "💰 Returning change: $%.2f\n", change)
	}
	m.money = 0
	m.selected = ""
	m.setState(NoMoney{})
}

// SoldOut rejects everything except ejecting whatever balance remains.
type SoldOut struct{}

func (SoldOut) Name() string { return "SoldOut" }

func (SoldOut) InsertMoney(m *Machine, amount float64) {
	fmt.Fprintln(m.out, "❌ Machine is out of products")
}

func (SoldOut) EjectMoney(m *Machine) {
	if m.money > 0 {
		fmt.Fprintf(m.out, "💰 Ejecting $%.2f\n", m.money)
		m.money = 0
	}
	m.setState(NoMoney{})
}

func (SoldOut) SelectProduct(m *Machine, product string) {
	fmt.Fprintln(m.out, "❌ Machine is out of products")
}

func (SoldOut) Dispense(m *Machine) {
	fmt.Fprintln(m.out, "❌ Machine is out of products")
}
