package demo

import (
	"github.com/mesh-intelligence/patternbook/pkg/adapter"
)

func adapterMedia(r *Runner) error {
	r.banner("Adapter Pattern - Media Player Example")

	player := adapter.NewAudioPlayer(r.Out)

	r.step("Playing different media formats:")

	for _, media := range []struct{ kind, file string }{
		{"mp3", "song.mp3"},
		{"mp4", "movie.mp4"},
		{"vlc", "video.vlc"},
	} {
		if _, err := player.Play(media.kind, media.file); err != nil {
			return err
		}
		r.println()
	}

	r.step("Attempting to play unsupported format:")
	if _, err := player.Play("avi", "video.avi"); err != nil {
		r.println(r.Styles.Error(err.Error()))
	}
	r.println()

	r.footer(
		"Key Benefit: Can use incompatible playback decks through",
		"a unified media player interface!",
	)
	return nil
}

func adapterGateway(r *Runner) error {
	r.banner("Adapter Pattern - Payment Gateway Example")

	stripe := adapter.StripeAdapter{API: adapter.StripeAPI{Out: r.Out}}
	paypal := adapter.PayPalAdapter{API: adapter.PayPalAPI{Out: r.Out}}
	square := adapter.SquareAdapter{API: adapter.SquareAPI{Out: r.Out}}

	r.println("Processing payments through different gateways:")
	r.println(r.Styles.Rule())

	charge := func(heading string, g adapter.Gateway, amount float64) (adapter.Payment, error) {
		r.println()
		r.step(heading)
		payment, err := g.Charge(amount, "USD")
		if err != nil {
			return adapter.Payment{}, err
		}
		r.printf("Result: id=%s amount=%.2f %s status=%s gateway=%s\n",
			payment.TransactionID, payment.Amount, payment.Currency, payment.Status, payment.Gateway)
		return payment, nil
	}

	p1, err := charge("1. Stripe Payment:", stripe, 99.99)
	if err != nil {
		return err
	}
	p2, err := charge("2. PayPal Payment:", paypal, 149.50)
	if err != nil {
		return err
	}
	if _, err := charge("3. Square Payment:", square, 75.00); err != nil {
		return err
	}

	r.println()
	r.println("Processing refunds:")
	r.println(r.Styles.Rule())

	refund := func(heading string, g adapter.Gateway, transactionID string) error {
		r.println()
		r.step(heading)
		ref, err := g.Refund(transactionID)
		if err != nil {
			return err
		}
		r.printf("Result: id=%s for=%s status=%s gateway=%s\n",
			ref.RefundID, ref.TransactionID, ref.Status, ref.Gateway)
		return nil
	}

	if err := refund("4. Stripe Refund:", stripe, p1.TransactionID); err != nil {
		return err
	}
	if err := refund("5. PayPal Refund:", paypal, p2.TransactionID); err != nil {
		return err
	}
	r.println()

	r.footer(
		"Key Benefit: Can use different payment APIs (Stripe, PayPal,",
		"Square) through a unified gateway interface!",
	)
	return nil
}
