package decorator

import "fmt"

// Beverage is the component interface for everything a cup can hold.
type Beverage interface {
	Description() string
	Cost() float64
}

// Espresso is the base beverage.
type Espresso struct{}

func (Espresso) Description() string { return "Espresso" }
func (Espresso) Cost() float64       { return 2.50 }

// milk adds milk to any beverage.
type milk struct {
	inner Beverage
}

// WithMilk wraps b with milk (+$0.50).
func WithMilk(b Beverage) Beverage { return milk{inner: b} }

func (m milk) Description() string { return m.inner.Description() + ", Milk" }
func (m milk) Cost() float64       { return m.inner.Cost() + 0.50 }

// sugar adds a number of teaspoons of sugar to any beverage.
type sugar struct {
	inner     Beverage
	teaspoons int
}

// WithSugar wraps b with teaspoons of sugar (+$0.10 each).
func WithSugar(b Beverage, teaspoons int) Beverage {
	return sugar{inner: b, teaspoons: teaspoons}
}

func (s sugar) Description() string {
	return fmt.Sprintf("%s, %d tsp Sugar", s.inner.Description(), s.teaspoons)
}

func (s sugar) Cost() float64 { return s.inner.Cost() + 0.10*float64(s.teaspoons) }

// whip adds whipped cream to any beverage.
type whip struct {
	inner Beverage
}

// WithWhip wraps b with whipped cream (+$0.75).
func WithWhip(b Beverage) Beverage { return whip{inner: b} }

func (w whip) Description() string { return w.inner.Description() + ", Whipped Cream" }
func (w whip) Cost() float64       { return w.inner.Cost() + 0.75 }

// caramel adds caramel syrup to any beverage.
type caramel struct {
	inner Beverage
}

// WithCaramel wraps b with caramel syrup (+$0.60).
func WithCaramel(b Beverage) Beverage { return caramel{inner: b} }

func (c caramel) Description() string { return c.inner.Description() + ", Caramel" }
func (c caramel) Cost() float64       { return c.inner.Cost() + 0.60 }
