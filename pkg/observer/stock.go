package observer

import (
	"fmt"
	"io"
)

// Quote is the snapshot delivered to stock observers.
type Quote struct {
	Symbol string
	Price  float64
	Change float64 // absolute change from the previous price
}

// PercentChange returns the change as a percentage of the previous price,
// or zero when the previous price was not positive.
func (q Quote) PercentChange() float64 {
	prev := q.Price - q.Change
	if prev <= 0 {
		return 0
	}
	return q.Change / prev * 100
}

// QuoteObserver receives stock price updates.
type QuoteObserver interface {
	Update(q Quote)
}

// Ticker is the stock price subject.
type Ticker struct {
	symbol    string
	price     float64
	prev      float64
	observers []QuoteObserver
}

// NewTicker returns a Ticker for a symbol at an initial price.
func NewTicker(symbol string, price float64) *Ticker {
	return &Ticker{symbol: symbol, price: price, prev: price}
}

func (t *Ticker) Symbol() string { return t.symbol }
func (t *Ticker) Price() float64 { return t.price }

// Attach subscribes o in attachment order. A second attach of the same
// observer is ignored; the return value reports whether o was added.
func (t *Ticker) Attach(o QuoteObserver) bool {
	for _, existing := range t.observers {
		if existing == o {
			return false
		}
	}
	t.observers = append(t.observers, o)
	return true
}

// Detach unsubscribes o. Detaching an observer that was never attached is a
// no-op; the return value reports whether o was removed.
func (t *Ticker) Detach(o QuoteObserver) bool {
	for i, existing := range t.observers {
		if existing == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Notify delivers the current quote to every attached observer in
// attachment order.
func (t *Ticker) Notify() {
	q := Quote{Symbol: t.symbol, Price: t.price, Change: t.price - t.prev}
	for _, o := range t.observers {
		o.Update(q)
	}
}

// SetPrice updates the price and notifies observers. Setting the current
// price again delivers nothing.
func (t *Ticker) SetPrice(price float64) {
	if price == t.price {
		return
	}
	t.prev = t.price
	t.price = price
	t.Notify()
}

// Trader reacts to moves above its percent threshold with buy/sell signals.
type Trader struct {
	Name      string
	Threshold float64 // fraction, e.g. 0.05 for 5%
	Out       io.Writer
}

func (tr *Trader) Update(q Quote) {
	pct := q.PercentChange()
	if pct < 0 {
		pct = -pct
	}
	if pct < tr.Threshold*100 {
		return
	}
	signal := "📈 BUY SIGNAL"
	if q.Change < 0 {
		signal = "📉 SELL SIGNAL"
	}
	fmt.Fprintf(tr.Out, "  🔔 Trader %s: %s for %s!\n", tr.Name, signal, q.Symbol)
	fmt.Fprintf(tr.Out, "     Change: %+.2f%% ($%+.2f)\n", q.PercentChange(), q.Change)
}

// Analyst tracks a per-symbol price history and reports the trend once
// three readings are available.
type Analyst struct {
	Name    string
	Out     io.Writer
	history map[string][]float64
}

func (a *Analyst) Update(q Quote) {
	if a.history == nil {
		a.history = make(map[string][]float64)
	}
	a.history[q.Symbol] = append(a.history[q.Symbol], q.Price)

	h := a.history[q.Symbol]
	if len(h) < 3 {
		return
	}
	trend := "📊 DOWNTREND"
	if h[len(h)-1] > h[len(h)-2] && h[len(h)-2] > h[len(h)-3] {
		trend = "📊 UPTREND"
	}
	avg := (h[len(h)-1] + h[len(h)-2] + h[len(h)-3]) / 3
	fmt.Fprintf(a.Out, "  📊 Analyst %s: %s detected for %s\n", a.Name, trend, q.Symbol)
	fmt.Fprintf(a.Out, "     Current: $%.2f, 3-period avg: $%.2f\n", q.Price, avg)
}

// MobileApp pushes every quote to a user's device.
type MobileApp struct {
	UserID string
	Out    io.Writer
}

func (m *MobileApp) Update(q Quote) {
	emoji := "⚪"
	switch {
	case q.Change > 0:
		emoji = "🟢"
	case q.Change < 0:
		emoji = "🔴"
	}
	fmt.Fprintf(m.Out, "  📱 Mobile App (%s): %s %s $%.2f (%+.2f%%)\n",
		m.UserID, emoji, q.Symbol, q.Price, q.PercentChange())
}

// EmailAlert mails only on absolute moves above one dollar.
type EmailAlert struct {
	Email string
	Out   io.Writer
}

func (e *EmailAlert) Update(q Quote) {
	change := q.Change
	if change < 0 {
		change = -change
	}
	if change <= 1.0 {
		return
	}
	direction := "increased"
	if q.Change < 0 {
		direction = "decreased"
	}
	fmt.Fprintf(e.Out, "  📧 Email to %s: %s %s by $%.2f\n", e.Email, q.Symbol, direction, change)
}
