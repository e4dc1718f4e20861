package factory

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Database factory errors.
var (
	ErrUnknownDatabase = errors.New("unsupported database type")
	ErrNotConnected    = errors.New("not connected to database")
)

// Kind selects a database connection implementation.
type Kind string

// Supported database kinds. MySQL, Postgres, and Mongo are simulated;
// SQLite opens a real in-memory database.
const (
	MySQL    Kind = "mysql"
	Postgres Kind = "postgres"
	Mongo    Kind = "mongo"
	SQLite   Kind = "sqlite"
)

// Row is one query result record.
type Row = map[string]any

// Params holds connection parameters shared by all kinds.
type Params struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// Conn is the product interface for database connections.
type Conn interface {
	Connect() error
	// Query executes a query against an open connection.
	// Returns ErrNotConnected before Connect or after Close.
	Query(query string) ([]Row, error)
	Close() error
	Kind() string
}

// simConn simulates a connection for kinds without a local engine. It
// narrates connect/query/close and answers queries with canned rows.
type simConn struct {
	kind      string
	params    Params
	rows      []Row
	out       io.Writer
	connected bool
}

func (c *simConn) Connect() error {
	fmt.Fprintf(c.out, "🔌 Connecting to %s at %s:%d\n", c.kind, c.params.Host, c.params.Port)
	fmt.Fprintf(c.out, "   Database: %s, User: %s\n", c.params.Database, c.params.User)
	c.connected = true
	fmt.Fprintf(c.out, "✅ %s connection established\n", c.kind)
	return nil
}

func (c *simConn) Query(query string) ([]Row, error) {
	if !c.connected {
		return nil, fmt.Errorf("query %s: %w", c.kind, ErrNotConnected)
	}
	fmt.Fprintf(c.out, "📊 Executing %s query: %s\n", c.kind, query)
	return c.rows, nil
}

func (c *simConn) Close() error {
	if !c.connected {
		return nil
	}
	fmt.Fprintf(c.out, "🔌 Closing %s connection\n", c.kind)
	c.connected = false
	return nil
}

func (c *simConn) Kind() string { return c.kind }

// New resolves a kind to a connection. Returns ErrUnknownDatabase for an
// unmapped kind. Output narration goes to out.
func New(kind Kind, params Params, out io.Writer) (Conn, error) {
	switch kind {
	case MySQL:
		return &simConn{kind: "MySQL", params: params, out: out, rows: []Row{
			{"id": 1, "name": "John", "email": "john@example.com"},
			{"id": 2, "name": "Jane", "email": "jane@example.com"},
		}}, nil
	case Postgres:
		return &simConn{kind: "PostgreSQL", params: params, out: out, rows: []Row{
			{"id": 1, "name": "Alice", "email": "alice@example.com"},
			{"id": 2, "name": "Bob", "email": "bob@example.com"},
		}}, nil
	case Mongo:
		return &simConn{kind: "MongoDB", params: params, out: out, rows: []Row{
			{"_id": "507f1f77bcf86cd799439011", "name": "Charlie", "email": "charlie@example.com"},
			{"_id": "507f191e810c19729de860ea", "name": "Diana", "email": "diana@example.com"},
		}}, nil
	case SQLite:
		return newSQLiteConn(params, out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabase, kind)
	}
}

// Manager drives the connect/query/report/close cycle for one connection.
type Manager struct {
	conn Conn
	out  io.Writer
}

// NewManager builds a manager around a freshly resolved connection.
func NewManager(kind Kind, params Params, out io.Writer) (*Manager, error) {
	conn, err := New(kind, params, out)
	if err != nil {
		return nil, err
	}
	return &Manager{conn: conn, out: out}, nil
}

// RunQuery connects, executes the query, reports the rows, and closes.
func (m *Manager) RunQuery(query string) error {
	if err := m.conn.Connect(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer m.conn.Close()

	rows, err := m.conn.Query(query)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	fmt.Fprintf(m.out, "📋 Results from %s:\n", m.conn.Kind())
	for _, row := range rows {
		fmt.Fprintf(m.out, "   %s\n", formatRow(row))
	}
	return nil
}

// formatRow renders a row with keys in sorted order so output is stable.
func formatRow(row Row) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := "{"
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %v", k, row[k])
	}
	return s + "}"
}
