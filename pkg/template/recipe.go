package template

import (
	"fmt"
	"io"
)

// Recipe names the fixed preparation steps. Concrete recipes embed
// BaseRecipe for the default steps and supply Brew and AddCondiments
// themselves.
type Recipe interface {
	RecipeName() string
	BoilWater(w io.Writer)
	Brew(w io.Writer)
	PourInCup(w io.Writer)
	AddCondiments(w io.Writer)
}

// Prepare runs the recipe steps in their fixed order:
// boil, brew, pour, condiments.
func Prepare(w io.Writer, r Recipe) {
	fmt.Fprintf(w, "\n🍳 Preparing %s...\n", r.RecipeName())
	r.BoilWater(w)
	r.Brew(w)
	r.PourInCup(w)
	r.AddCondiments(w)
	fmt.Fprintf(w, "✅ %s is ready!\n", r.RecipeName())
}

// BaseRecipe supplies the default boil and pour steps.
type BaseRecipe struct{}

func (BaseRecipe) BoilWater(w io.Writer) {
	fmt.Fprintln(w, "1. Boiling water...")
}

func (BaseRecipe) PourInCup(w io.Writer) {
	fmt.Fprintln(w, "3. Pouring into cup...")
}

// Coffee is drip coffee with sugar and milk.
type Coffee struct {
	BaseRecipe
}

func (Coffee) RecipeName() string { return "Coffee" }

func (Coffee) Brew(w io.Writer) {
	fmt.Fprintln(w, "2. Dripping coffee through filter...")
}

func (Coffee) AddCondiments(w io.Writer) {
	fmt.Fprintln(w, "4. Adding sugar and milk...")
}

// Tea is steeped tea with lemon.
type Tea struct {
	BaseRecipe
}

func (Tea) RecipeName() string { return "Tea" }

func (Tea) Brew(w io.Writer) {
	fmt.Fprintln(w, "2. Steeping the tea...")
}

func (Tea) AddCondiments(w io.Writer) {
	fmt.Fprintln(w, "4. Adding lemon...")
}

// Soup overrides every default: it is cooked in a pot and served in a bowl.
type Soup struct {
	BaseRecipe
}

func (Soup) RecipeName() string { return "Vegetable Soup" }

func (Soup) BoilWater(w io.Writer) {
	fmt.Fprintln(w, "1. Boiling water in a pot...")
}

func (Soup) Brew(w io.Writer) {
	fmt.Fprintln(w, "2. Adding vegetables and cooking...")
}

func (Soup) PourInCup(w io.Writer) {
	fmt.Fprintln(w, "3. Pouring soup into bowl...")
}

func (Soup) AddCondiments(w io.Writer) {
	fmt.Fprintln(w, "4. Adding salt, pepper, and herbs...")
}

// Latte brews espresso with steamed milk.
type Latte struct {
	BaseRecipe
}

func (Latte) RecipeName() string { return "Latte" }

func (Latte) Brew(w io.Writer) {
	fmt.Fprintln(w, "2. Brewing espresso...")
	fmt.Fprintln(w, "   Steaming milk...")
}

func (Latte) AddCondiments(w io.Writer) {
	fmt.Fprintln(w, "4. Adding steamed milk foam...")
	fmt.Fprintln(w, "   Creating latte art...")
}
