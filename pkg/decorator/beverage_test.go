package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeverageChains(t *testing.T) {
	tests := []struct {
		name     string
		beverage Beverage
		wantDesc string
		wantCost float64
	}{
		{
			name:     "plain espresso",
			beverage: Espresso{},
			wantDesc: "Espresso",
			wantCost: 2.50,
		},
		{
			name:     "milk and double sugar",
			beverage: WithSugar(WithMilk(Espresso{}), 2),
			wantDesc: "Espresso, Milk, 2 tsp Sugar",
			wantCost: 3.20,
		},
		{
			name:     "all add-ons",
			beverage: WithCaramel(WithWhip(WithSugar(WithMilk(Espresso{}), 1))),
			wantDesc: "Espresso, Milk, 1 tsp Sugar, Whipped Cream, Caramel",
			wantCost: 4.45,
		},
		{
			name:     "milk triple sugar whip",
			beverage: WithWhip(WithSugar(WithMilk(Espresso{}), 3)),
			wantDesc: "Espresso, Milk, 3 tsp Sugar, Whipped Cream",
			wantCost: 4.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDesc, tt.beverage.Description())
			assert.InDelta(t, tt.wantCost, tt.beverage.Cost(), 0.001)
		})
	}
}

func TestEachWrapGrowsCostAndDescription(t *testing.T) {
	var b Beverage = Espresso{}
	wraps := []func(Beverage) Beverage{
		WithMilk,
		func(b Beverage) Beverage { return WithSugar(b, 1) },
		WithWhip,
		WithCaramel,
	}

	for _, wrap := range wraps {
		prevCost := b.Cost()
		prevLen := len(b.Description())

		b = wrap(b)
		assert.Greater(t, b.Cost(), prevCost)
		assert.Greater(t, len(b.Description()), prevLen)
	}
}
