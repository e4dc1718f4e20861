package demo

import (
	"github.com/mesh-intelligence/patternbook/pkg/factory"
)

func factoryUI(r *Runner) error {
	r.banner("Factory Pattern - UI Components Example")

	build := func(heading string, p factory.Platform) error {
		r.step(heading)
		app, err := factory.NewApp(p)
		if err != nil {
			return err
		}
		app.RenderUI(r.Out)
		app.Interact(r.Out)
		r.println()
		return nil
	}

	if err := build("1. Windows Application:", factory.Windows); err != nil {
		return err
	}
	if err := build("2. macOS Application:", factory.MacOS); err != nil {
		return err
	}
	if err := build("3. Linux Application:", factory.Linux); err != nil {
		return err
	}

	r.footer(
		"Key Benefit: The application doesn't need to know which",
		"concrete UI types to create - the factory handles it!",
	)
	return nil
}

func factoryDatabase(r *Runner) error {
	r.banner("Factory Pattern - Database Connections Example")

	run := func(heading string, kind factory.Kind, params factory.Params, query string) error {
		r.step(heading)
		manager, err := factory.NewManager(kind, params, r.Out)
		if err != nil {
			return err
		}
		if err := manager.RunQuery(query); err != nil {
			return err
		}
		r.println()
		return nil
	}

	if err := run("1. MySQL Connection:", factory.MySQL, factory.Params{
		Host: "localhost", Port: 3306, Database: "mydb", User: "root", Password: "password123",
	}, "SELECT * FROM users LIMIT 2"); err != nil {
		return err
	}

	if err := run("2. PostgreSQL Connection:", factory.Postgres, factory.Params{
		Host: "localhost", Port: 5432, Database: "mydb", User: "postgres", Password: "password123",
	}, "SELECT * FROM users LIMIT 2"); err != nil {
		return err
	}

	if err := run("3. MongoDB Connection:", factory.Mongo, factory.Params{
		Host: "localhost", Port: 27017, Database: "mydb", User: "admin", Password: "password123",
	}, "db.users.find().limit(2)"); err != nil {
		return err
	}

	if err := run("4. SQLite Connection (real in-memory database):", factory.SQLite, factory.Params{
		Database: ":memory:",
	}, "SELECT id, name, email FROM users ORDER BY id LIMIT 2"); err != nil {
		return err
	}

	r.footer(
		"Key Benefit: The application doesn't need to know how to create",
		"specific database connections - the factory handles it!",
	)
	return nil
}
