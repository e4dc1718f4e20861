package demo

import (
	"github.com/mesh-intelligence/patternbook/pkg/decorator"
)

func decoratorCoffee(r *Runner) error {
	r.banner("Decorator Pattern - Coffee Shop Example")

	serve := func(heading string, b decorator.Beverage) {
		r.step(heading)
		r.printf("Description: %s\n", b.Description())
		r.printf("Cost: $%.2f\n\n", b.Cost())
	}

	serve("1. Simple Espresso:", decorator.Espresso{})

	serve("2. Espresso with Milk and Sugar:",
		decorator.WithSugar(decorator.WithMilk(decorator.Espresso{}), 2))

	serve("3. Espresso with All Add-ons:",
		decorator.WithCaramel(
			decorator.WithWhip(
				decorator.WithSugar(
					decorator.WithMilk(decorator.Espresso{}), 1))))

	serve("4. Custom Order (Espresso + Milk + 3 Sugar + Whip):",
		decorator.WithWhip(
			decorator.WithSugar(
				decorator.WithMilk(decorator.Espresso{}), 3)))

	r.footer(
		"Key Benefit: Can combine decorators dynamically without",
		"creating types for every possible combination!",
	)
	return nil
}

func decoratorMiddleware(r *Runner) error {
	r.banner("Decorator Pattern - Middleware Example")

	app := decorator.AppHandler{Out: r.Out}

	r.step("1. Direct Request (No Middleware):")
	app.Handle(decorator.Request{Path: "/home", User: "guest", Authenticated: true})
	r.println()

	r.step("2. Request with Logging:")
	logged := decorator.Logging(app, r.Out)
	logged.Handle(decorator.Request{Path: "/about", User: "guest", Authenticated: true})
	r.println()

	r.step("3. Request with Auth + Logging:")
	secure := decorator.Auth(decorator.Logging(app, r.Out), r.Out)

	r.println("Case A: Valid User")
	secure.Handle(decorator.Request{Path: "/dashboard", User: "admin", Authenticated: true})
	r.println()

	r.println("Case B: Invalid User")
	secure.Handle(decorator.Request{Path: "/dashboard", User: "hacker", Authenticated: false})
	r.println()

	r.footer(
		"Key Benefit: We can wrap the core handler with any number of",
		"middleware layers (Auth, Logging, Caching) dynamically!",
	)
	return nil
}

func decoratorText(r *Runner) error {
	r.banner("Decorator Pattern - Text Formatting Example")

	show := func(heading string, t decorator.Text) {
		r.step(heading)
		r.printf("Output: %s\n\n", t.Render())
	}

	show("1. Plain Text:", decorator.Plain("Hello, World!"))
	show("2. Bold Text:", decorator.Bold(decorator.Plain("Hello, World!")))
	show("3. Bold and Italic:",
		decorator.Italic(decorator.Bold(decorator.Plain("Hello, World!"))))
	show("4. Bold, Italic, and Underline:",
		decorator.Underline(decorator.Italic(decorator.Bold(decorator.Plain("Hello, World!")))))
	show("5. Strikethrough:", decorator.Strikethrough(decorator.Plain("Old Price: $100")))
	show("6. Code Formatting:", decorator.Code(decorator.Plain("print('Hello')")))
	show("7. Complex Combination (Bold + Italic + Code):",
		decorator.Code(decorator.Italic(decorator.Bold(decorator.Plain("function_name")))))

	r.footer(
		"Key Benefit: Can stack multiple formatters dynamically",
		"without creating types for every combination!",
	)
	return nil
}
