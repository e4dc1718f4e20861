package observer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder counts deliveries and remembers the quotes it saw.
type recorder struct {
	quotes []Quote
}

func (r *recorder) Update(q Quote) { r.quotes = append(r.quotes, q) }

func TestAttachSuppressesDuplicates(t *testing.T) {
	ticker := NewTicker("AAPL", 150.00)
	obs := &recorder{}

	assert.True(t, ticker.Attach(obs))
	assert.False(t, ticker.Attach(obs), "second attach of same observer must be ignored")

	ticker.SetPrice(152.50)
	assert.Len(t, obs.quotes, 1, "duplicate attach must not cause double delivery")
}

func TestDetachStopsDelivery(t *testing.T) {
	ticker := NewTicker("AAPL", 150.00)
	kept := &recorder{}
	dropped := &recorder{}
	ticker.Attach(kept)
	ticker.Attach(dropped)

	assert.True(t, ticker.Detach(dropped))
	assert.False(t, ticker.Detach(dropped), "detach of absent observer is a no-op")

	ticker.SetPrice(148.00)
	assert.Len(t, kept.quotes, 1)
	assert.Empty(t, dropped.quotes)
}

func TestNotifyDeliversInAttachmentOrder(t *testing.T) {
	ticker := NewTicker("AAPL", 150.00)

	var order []string
	first := observeFunc(func(Quote) { order = append(order, "first") })
	second := observeFunc(func(Quote) { order = append(order, "second") })
	third := observeFunc(func(Quote) { order = append(order, "third") })
	ticker.Attach(first)
	ticker.Attach(second)
	ticker.Attach(third)

	ticker.SetPrice(151.00)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

// observeFunc adapts a function to QuoteObserver.
type observeFunc func(Quote)

func (f observeFunc) Update(q Quote) { f(q) }

func TestSetPriceComputesChange(t *testing.T) {
	ticker := NewTicker("AAPL", 150.00)
	obs := &recorder{}
	ticker.Attach(obs)

	ticker.SetPrice(152.50)
	ticker.SetPrice(148.00)

	assert.Equal(t, []Quote{
		{Symbol: "AAPL", Price: 152.50, Change: 2.50},
		{Symbol: "AAPL", Price: 148.00, Change: -4.50},
	}, obs.quotes)
}

func TestUnchangedPriceDeliversNothing(t *testing.T) {
	ticker := NewTicker("AAPL", 150.00)
	obs := &recorder{}
	ticker.Attach(obs)

	ticker.SetPrice(150.00)
	assert.Empty(t, obs.quotes)
}

func TestTraderSignalsOnThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		price     float64
		want      string
	}{
		{name: "large rise triggers buy", threshold: 0.01, price: 155.00, want: "BUY SIGNAL"},
		{name: "large drop triggers sell", threshold: 0.01, price: 145.00, want: "SELL SIGNAL"},
		{name: "small move below threshold is silent", threshold: 0.05, price: 150.50, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ticker := NewTicker("AAPL", 150.00)
			ticker.Attach(&Trader{Name: "John", Threshold: tt.threshold, Out: &buf})

			ticker.SetPrice(tt.price)
			if tt.want == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.want)
			}
		})
	}
}

func TestAnalystReportsTrendAfterThreeReadings(t *testing.T) {
	var buf bytes.Buffer
	ticker := NewTicker("AAPL", 150.00)
	ticker.Attach(&Analyst{Name: "Dr. Smith", Out: &buf})

	ticker.SetPrice(151.00)
	ticker.SetPrice(152.00)
	assert.Empty(t, buf.String(), "no trend with fewer than three readings")

	ticker.SetPrice(153.00)
	assert.Contains(t, buf.String(), "UPTREND")
}

func TestEmailAlertOnlyForLargeMoves(t *testing.T) {
	var buf bytes.Buffer
	ticker := NewTicker("AAPL", 150.00)
	ticker.Attach(&EmailAlert{Email: "alerts@example.com", Out: &buf})

	ticker.SetPrice(150.50)
	assert.Empty(t, buf.String())

	ticker.SetPrice(148.00)
	out := buf.String()
	assert.Contains(t, out, "decreased by $2.50")
	assert.Equal(t, 1, strings.Count(out, "📧"))
}
