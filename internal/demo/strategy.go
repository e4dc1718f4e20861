package demo

import (
	"time"

	"github.com/mesh-intelligence/patternbook/pkg/strategy"
)

func strategyPayment(r *Runner) error {
	r.banner("Strategy Pattern - Payment Processing Example")

	processor := strategy.NewProcessor()

	charge := func(heading string, s strategy.PaymentStrategy, verb string, amount float64) error {
		r.step(heading)
		processor.SetStrategy(s)
		receipt, err := processor.Process(amount)
		if err != nil {
			return err
		}
		r.printf("Processing %s payment of $%.2f\n", verb, receipt.Amount)
		r.println(receipt.Detail)
		r.printf("Result: status=%s method=%s amount=%.2f %s id=%s\n",
			receipt.Status, receipt.Method, receipt.Amount, receipt.Currency, receipt.TransactionID)
		r.println()
		return nil
	}

	card := strategy.CreditCard{Number: "4532-1234-5678-9010", CVV: "123"}
	if err := charge("1. Credit Card Payment:", card, "credit card", 99.99); err != nil {
		return err
	}

	paypal := strategy.PayPal{Email: "customer@example.com"}
	if err := charge("2. PayPal Payment:", paypal, "PayPal", 149.50); err != nil {
		return err
	}

	crypto := strategy.Crypto{Wallet: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", Currency: "BTC"}
	if err := charge("3. Cryptocurrency Payment:", crypto, "BTC", 200.00); err != nil {
		return err
	}

	r.footer(
		"Key Benefit: Can switch payment methods at runtime",
		"without modifying the payment processor!",
	)
	return nil
}

func strategySorting(r *Runner) error {
	r.banner("Strategy Pattern - Sorting Algorithms Example")

	data := []int{64, 34, 25, 12, 22, 11, 90, 5, 77, 50}
	r.printf("Original data: %v\n\n", data)

	sorter := strategy.NewSorter()

	run := func(heading string, s strategy.SortStrategy) error {
		r.step(heading)
		sorter.SetStrategy(s)
		start := time.Now()
		sorted, err := sorter.Sort(data)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		r.printf("Algorithm: %s\n", sorter.StrategyName())
		r.printf("Sorted: %v\n", sorted)
		r.printf("Time: %.4f ms\n\n", float64(elapsed.Nanoseconds())/1e6)
		return nil
	}

	if err := run("1. Using QuickSort Strategy:", strategy.QuickSort{}); err != nil {
		return err
	}
	if err := run("2. Using MergeSort Strategy:", strategy.MergeSort{}); err != nil {
		return err
	}
	if err := run("3. Using BubbleSort Strategy:", strategy.BubbleSort{}); err != nil {
		return err
	}

	r.footer(
		"Key Benefit: Can switch algorithms based on data characteristics",
		"without modifying the sorter!",
	)
	return nil
}
