package demo

import (
	"github.com/mesh-intelligence/patternbook/pkg/observer"
)

func observerStock(r *Runner) error {
	r.banner("Observer Pattern - Stock Market Example")

	apple := observer.NewTicker("AAPL", 150.00)

	trader1 := &observer.Trader{Name: "John", Threshold: 0.03, Out: r.Out}
	trader2 := &observer.Trader{Name: "Sarah", Threshold: 0.05, Out: r.Out}
	analyst := &observer.Analyst{Name: "Dr. Smith", Out: r.Out}
	mobile := &observer.MobileApp{UserID: "user123", Out: r.Out}
	email := &observer.EmailAlert{Email: "alerts@example.com", Out: r.Out}

	r.step("Setting up observers:")
	for _, o := range []observer.QuoteObserver{trader1, trader2, analyst, mobile, email} {
		apple.Attach(o)
	}
	r.printf("Attached %d observers to %s\n\n", 5, apple.Symbol())

	r.println("Simulating price changes:")
	r.println(r.Styles.Rule())
	for _, price := range []float64{152.50, 148.00, 155.00} {
		r.printf("%s: $%.2f\n", apple.Symbol(), price)
		apple.SetPrice(price)
		r.println()
	}

	r.step("Unsubscribing trader Sarah:")
	apple.Detach(trader2)
	r.println()

	r.printf("%s: $%.2f\n", apple.Symbol(), 153.00)
	apple.SetPrice(153.00)
	r.println()

	r.footer(
		"Key Benefit: The ticker doesn't need to know about specific observers.",
		"Observers can be added and removed dynamically!",
	)
	return nil
}

func observerWeather(r *Runner) error {
	r.banner("Observer Pattern - Weather Station Example")

	station := observer.NewWeatherStation()

	current := &observer.CurrentConditions{Out: r.Out}
	stats := &observer.Statistics{Out: r.Out}
	forecast := &observer.Forecast{Out: r.Out}
	alerts := &observer.Alerts{Out: r.Out}

	r.step("Setting up weather displays:")
	for _, o := range []observer.ReadingObserver{current, stats, forecast, alerts} {
		station.Attach(o)
	}
	r.printf("Attached %d displays\n\n", 4)

	r.println("Simulating weather updates:")
	r.println(r.Styles.Rule())
	readings := []struct {
		temp, humidity, pressure float64
	}{
		{25.0, 65.0, 1013.2},
		{27.5, 70.0, 1012.8},
		{30.0, 75.0, 1010.5},
		{28.5, 68.0, 1011.2},
	}
	for _, m := range readings {
		station.SetMeasurements(m.temp, m.humidity, m.pressure)
		r.println()
	}

	r.step("Testing extreme conditions:")
	station.SetMeasurements(38.0, 85.0, 1008.0)
	r.println()
	station.SetMeasurements(-2.0, 15.0, 1020.0)
	r.println()

	r.footer(
		"Key Benefit: The weather station doesn't need to know about",
		"specific display types. Displays can be added and removed dynamically!",
	)
	return nil
}

func observerChannel(r *Runner) error {
	r.banner("Observer Pattern - Video Channel Example")

	channel := observer.NewChannel("TechDaily", r.Out)

	alice := &observer.Viewer{Name: "Alice", Out: r.Out}
	bob := &observer.Viewer{Name: "Bob", Out: r.Out}
	charlie := &observer.Viewer{Name: "Charlie", Out: r.Out}

	channel.Subscribe(alice)
	channel.Subscribe(bob)

	channel.Upload("Observer Pattern Explained")

	r.println()
	channel.Subscribe(charlie)
	channel.Unsubscribe(bob)

	channel.Upload("Design Patterns Tutorial")

	r.println()
	r.footer(
		"Key Benefit: The channel doesn't need to know WHO subscribers are,",
		"just that they implement the observer interface!",
	)
	return nil
}
