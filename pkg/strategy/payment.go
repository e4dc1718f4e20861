package strategy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNoStrategy is returned by a context whose strategy has not been set.
var ErrNoStrategy = errors.New("no strategy set")

// Payment method names as they appear in receipts.
const (
	MethodCreditCard = "credit_card"
	MethodPayPal     = "paypal"
	MethodCrypto     = "crypto"
)

// Receipt is the normalized result of a processed payment.
type Receipt struct {
	Status        string
	Method        string
	Currency      string
	Amount        float64
	TransactionID string
	Detail        string // human-readable account detail, e.g. "Card: ****9010"
}

// PaymentStrategy is the interface every payment method implements.
type PaymentStrategy interface {
	// Pay charges the given amount and returns a receipt.
	Pay(amount float64) (Receipt, error)
}

// CreditCard pays with a card number and CVV. The receipt detail masks all
// but the last four digits.
type CreditCard struct {
	Number string
	CVV    string
}

func (c CreditCard) Pay(amount float64) (Receipt, error) {
	return Receipt{
		Status:        "success",
		Method:        MethodCreditCard,
		Currency:      "USD",
		Amount:        amount,
		TransactionID: "CC-" + shortID(),
		Detail:        fmt.Sprintf("Card: ****%s", lastN(c.Number, 4)),
	}, nil
}

// PayPal pays from a PayPal account identified by email.
type PayPal struct {
	Email string
}

func (p PayPal) Pay(amount float64) (Receipt, error) {
	return Receipt{
		Status:        "success",
		Method:        MethodPayPal,
		Currency:      "USD",
		Amount:        amount,
		TransactionID: "PP-" + shortID(),
		Detail:        fmt.Sprintf("PayPal account: %s", p.Email),
	}, nil
}

// Crypto pays from a cryptocurrency wallet. Currency defaults to BTC when
// left empty.
type Crypto struct {
	Wallet   string
	Currency string
}

func (c Crypto) Pay(amount float64) (Receipt, error) {
	currency := c.Currency
	if currency == "" {
		currency = "BTC"
	}
	return Receipt{
		Status:        "success",
		Method:        MethodCrypto,
		Currency:      currency,
		Amount:        amount,
		TransactionID: "CRYPTO-" + shortID(),
		Detail:        fmt.Sprintf("Wallet: %s", elide(c.Wallet, 10)),
	}, nil
}

// Processor is the payment context. It delegates Process to the currently
// held strategy, which is replaceable at any time.
type Processor struct {
	strategy PaymentStrategy
}

// NewProcessor returns a Processor with no strategy set.
func NewProcessor() *Processor {
	return &Processor{}
}

// SetStrategy replaces the active payment strategy unconditionally.
func (p *Processor) SetStrategy(s PaymentStrategy) {
	p.strategy = s
}

// Process charges the amount using the active strategy.
// Returns ErrNoStrategy if no strategy has been set.
func (p *Processor) Process(amount float64) (Receipt, error) {
	if p.strategy == nil {
		return Receipt{}, fmt.Errorf("process payment: %w", ErrNoStrategy)
	}
	return p.strategy.Pay(amount)
}

// shortID returns the first UUID group, enough to make receipts distinct
// within a demo run.
func shortID() string {
	return uuid.NewString()[:8]
}

// lastN returns the last n characters of s, or s itself when shorter.
func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// elide keeps the first and last n characters of s with an ellipsis between.
func elide(s string, n int) string {
	if len(s) <= 2*n {
		return s
	}
	return s[:n] + "..." + s[len(s)-n:]
}
