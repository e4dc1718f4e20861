package adapter

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Payment is the normalized result of a charge, regardless of gateway.
type Payment struct {
	TransactionID string
	Amount        float64
	Currency      string
	Status        string
	Gateway       string
}

// Refund is the normalized result of a refund.
type Refund struct {
	RefundID      string
	TransactionID string
	Status        string
	Gateway       string
}

// Gateway is the target interface for payment processing.
type Gateway interface {
	Charge(amount float64, currency string) (Payment, error)
	Refund(transactionID string) (Refund, error)
}

// StripeAPI is an adaptee that works in integer cents.
type StripeAPI struct {
	Out io.Writer
}

// StripeCharge is Stripe's native charge result.
type StripeCharge struct {
	ID          string
	AmountCents int
	Currency    string
	Status      string
}

func (s StripeAPI) Charge(amountCents int, currency string) StripeCharge {
	fmt.Fprintf(s.Out, "💳 Stripe: Charging %.2f %s\n", float64(amountCents)/100, currency)
	return StripeCharge{
		ID:          "ch_stripe_" + shortID(),
		AmountCents: amountCents,
		Currency:    currency,
		Status:      "succeeded",
	}
}

func (s StripeAPI) ReverseCharge(chargeID string) StripeCharge {
	fmt.Fprintf(s.Out, "💳 Stripe: Reversing charge %s\n", chargeID)
	return StripeCharge{ID: "ref_" + chargeID, Status: "refunded"}
}

// PayPalAPI is an adaptee with differently named fields and methods.
type PayPalAPI struct {
	Out io.Writer
}

// PayPalResult is PayPal's native payment result.
type PayPalResult struct {
	PaymentID    string
	State        string
	Amount       float64
	CurrencyCode string
}

func (p PayPalAPI) MakePayment(amount float64, currencyCode string) PayPalResult {
	fmt.Fprintf(p.Out, "💳 PayPal: Processing payment of %.2f %s\n", amount, currencyCode)
	return PayPalResult{
		PaymentID:    "PAYPAL-" + shortID(),
		State:        "approved",
		Amount:       amount,
		CurrencyCode: currencyCode,
	}
}

func (p PayPalAPI) CancelPayment(paymentID string) PayPalResult {
	fmt.Fprintf(p.Out, "💳 PayPal: Cancelling payment %s\n", paymentID)
	return PayPalResult{PaymentID: paymentID, State: "refunded"}
}

// Money is Square's native amount object, in cents.
type Money struct {
	AmountCents int
	Currency    string
}

// SquareAPI is an adaptee that takes a Money object.
type SquareAPI struct {
	Out io.Writer
}

// SquareResult is Square's native payment result.
type SquareResult struct {
	PaymentID string
	Status    string
	Amount    Money
}

func (s SquareAPI) CreatePayment(amount Money) SquareResult {
	fmt.Fprintf(s.Out, "💳 Square: Creating payment of %.2f %s\n",
		float64(amount.AmountCents)/100, amount.Currency)
	return SquareResult{PaymentID: "sq_" + shortID(), Status: "COMPLETED", Amount: amount}
}

func (s SquareAPI) VoidPayment(paymentID string) SquareResult {
	fmt.Fprintf(s.Out, "💳 Square: Voiding payment %s\n", paymentID)
	return SquareResult{PaymentID: paymentID, Status: "VOIDED"}
}

// StripeAdapter converts between dollars and Stripe's cents.
type StripeAdapter struct {
	API StripeAPI
}

func (a StripeAdapter) Charge(amount float64, currency string) (Payment, error) {
	result := a.API.Charge(int(amount*100), currency)
	return Payment{
		TransactionID: result.ID,
		Amount:        float64(result.AmountCents) / 100,
		Currency:      result.Currency,
		Status:        result.Status,
		Gateway:       "stripe",
	}, nil
}

func (a StripeAdapter) Refund(transactionID string) (Refund, error) {
	result := a.API.ReverseCharge(transactionID)
	return Refund{
		RefundID:      result.ID,
		TransactionID: transactionID,
		Status:        result.Status,
		Gateway:       "stripe",
	}, nil
}

// PayPalAdapter renames PayPal's fields into the normalized shape.
type PayPalAdapter struct {
	API PayPalAPI
}

func (a PayPalAdapter) Charge(amount float64, currency string) (Payment, error) {
	result := a.API.MakePayment(amount, currency)
	return Payment{
		TransactionID: result.PaymentID,
		Amount:        result.Amount,
		Currency:      result.CurrencyCode,
		Status:        result.State,
		Gateway:       "paypal",
	}, nil
}

func (a PayPalAdapter) Refund(transactionID string) (Refund, error) {
	result := a.API.CancelPayment(transactionID)
	return Refund{
		RefundID:      result.PaymentID,
		TransactionID: transactionID,
		Status:        result.State,
		Gateway:       "paypal",
	}, nil
}

// SquareAdapter packs amounts into Money and lowercases Square's statuses.
type SquareAdapter struct {
	API SquareAPI
}

func (a SquareAdapter) Charge(amount float64, currency string) (Payment, error) {
	result := a.API.CreatePayment(Money{AmountCents: int(amount * 100), Currency: currency})
	return Payment{
		TransactionID: result.PaymentID,
		Amount:        float64(result.Amount.AmountCents) / 100,
		Currency:      result.Amount.Currency,
		Status:        strings.ToLower(result.Status),
		Gateway:       "square",
	}, nil
}

func (a SquareAdapter) Refund(transactionID string) (Refund, error) {
	result := a.API.VoidPayment(transactionID)
	return Refund{
		RefundID:      result.PaymentID,
		TransactionID: transactionID,
		Status:        strings.ToLower(result.Status),
		Gateway:       "square",
	}, nil
}

func shortID() string {
	return uuid.NewString()[:8]
}
