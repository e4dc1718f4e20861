package demo

// Default returns the registry pre-loaded with every demo, grouped by
// pattern family in teaching order.
func Default() *Registry {
	reg := NewRegistry()
	for _, d := range []Demo{
		{Name: "strategy/payment", Pattern: "strategy", Title: "Payment Processing", Run: strategyPayment},
		{Name: "strategy/sorting", Pattern: "strategy", Title: "Sorting Algorithms", Run: strategySorting},
		{Name: "decorator/coffee-shop", Pattern: "decorator", Title: "Coffee Shop", Run: decoratorCoffee},
		{Name: "decorator/middleware", Pattern: "decorator", Title: "Request Middleware", Run: decoratorMiddleware},
		{Name: "decorator/text-formatting", Pattern: "decorator", Title: "Text Formatting", Run: decoratorText},
		{Name: "observer/stock-market", Pattern: "observer", Title: "Stock Market", Run: observerStock},
		{Name: "observer/weather-station", Pattern: "observer", Title: "Weather Station", Run: observerWeather},
		{Name: "observer/channel", Pattern: "observer", Title: "Video Channel", Run: observerChannel},
		{Name: "adapter/media-player", Pattern: "adapter", Title: "Media Player", Run: adapterMedia},
		{Name: "adapter/payment-gateway", Pattern: "adapter", Title: "Payment Gateway", Run: adapterGateway},
		{Name: "factory/ui-components", Pattern: "factory", Title: "UI Components", Run: factoryUI},
		{Name: "factory/database", Pattern: "factory", Title: "Database Connections", Run: factoryDatabase},
		{Name: "state/music-player", Pattern: "state", Title: "Music Player", Run: stateMusicPlayer},
		{Name: "state/vending-machine", Pattern: "state", Title: "Vending Machine", Run: stateVendingMachine},
		{Name: "state/traffic-light", Pattern: "state", Title: "Traffic Light", Run: stateTrafficLight},
		{Name: "composite/file-system", Pattern: "composite", Title: "File System", Run: compositeFileSystem},
		{Name: "composite/org-chart", Pattern: "composite", Title: "Organization Chart", Run: compositeOrgChart},
		{Name: "template/recipes", Pattern: "template", Title: "Recipe System", Run: templateRecipes},
		{Name: "template/build-pipeline", Pattern: "template", Title: "Build Process", Run: templateBuilds},
	} {
		// A duplicate name here is a programming error.
		if err := reg.Register(d); err != nil {
			panic(err)
		}
	}
	return reg
}
