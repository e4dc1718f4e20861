package factory

import (
	"database/sql"
	"fmt"
	"io"

	_ "modernc.org/sqlite"
)

// sqliteSchema is created on connect so teaching queries have something
// real to run against.
const sqliteSchema = `
CREATE TABLE users (
	id    INTEGER PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL
);
`

// sqliteSeed populates the users table with the same shape of data the
// simulated connections answer with.
const sqliteSeed = `
INSERT INTO users (id, name, email) VALUES
	(1, 'Erin', 'erin@example.com'),
	(2, 'Frank', 'frank@example.com');
`

// sqliteConn is a real connection backed by an in-memory SQLite database.
// Unlike the simulated kinds, Query executes actual SQL.
type sqliteConn struct {
	params Params
	out    io.Writer
	db     *sql.DB
}

func newSQLiteConn(params Params, out io.Writer) *sqliteConn {
	return &sqliteConn{params: params, out: out}
}

func (c *sqliteConn) Connect() error {
	fmt.Fprintf(c.out, "🔌 Connecting to SQLite (in-memory)\n")
	fmt.Fprintf(c.out, "   Database: %s, User: %s\n", c.params.Database, c.params.User)

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := db.Exec(sqliteSeed); err != nil {
		db.Close()
		return fmt.Errorf("seed data: %w", err)
	}

	c.db = db
	fmt.Fprintln(c.out, "✅ SQLite connection established")
	return nil
}

func (c *sqliteConn) Query(query string) ([]Row, error) {
	if c.db == nil {
		return nil, fmt.Errorf("query SQLite: %w", ErrNotConnected)
	}
	fmt.Fprintf(c.out, "📊 Executing SQLite query: %s\n", query)

	rows, err := c.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (c *sqliteConn) Close() error {
	if c.db == nil {
		return nil
	}
	fmt.Fprintln(c.out, "🔌 Closing SQLite connection")
	err := c.db.Close()
	c.db = nil
	return err
}

func (c *sqliteConn) Kind() string { return "SQLite" }
