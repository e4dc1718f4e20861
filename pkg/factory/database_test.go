package factory

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{
	Host:     "localhost",
	Port:     3306,
	Database: "mydb",
	User:     "root",
	Password: "password123",
}

func TestNewResolvesKinds(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		wantKind string
		wantErr  error
	}{
		{name: "mysql", kind: MySQL, wantKind: "MySQL"},
		{name: "postgres", kind: Postgres, wantKind: "PostgreSQL"},
		{name: "mongo", kind: Mongo, wantKind: "MongoDB"},
		{name: "sqlite", kind: SQLite, wantKind: "SQLite"},
		{name: "unknown", kind: Kind("oracle"), wantErr: ErrUnknownDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := New(tt.kind, testParams, io.Discard)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, conn.Kind())
		})
	}
}

func TestQueryBeforeConnectFails(t *testing.T) {
	for _, kind := range []Kind{MySQL, SQLite} {
		conn, err := New(kind, testParams, io.Discard)
		require.NoError(t, err)

		_, err = conn.Query("SELECT 1")
		assert.ErrorIs(t, err, ErrNotConnected, string(kind))
	}
}

func TestSimulatedConnectionLifecycle(t *testing.T) {
	var buf bytes.Buffer
	conn, err := New(MySQL, testParams, &buf)
	require.NoError(t, err)

	require.NoError(t, conn.Connect())
	rows, err := conn.Query("SELECT * FROM users LIMIT 2")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "John", rows[0]["name"])
	require.NoError(t, conn.Close())

	out := buf.String()
	assert.Contains(t, out, "Connecting to MySQL at localhost:3306")
	assert.Contains(t, out, "Closing MySQL connection")
}

func TestSQLiteRunsRealQueries(t *testing.T) {
	var buf bytes.Buffer
	conn, err := New(SQLite, testParams, &buf)
	require.NoError(t, err)

	require.NoError(t, conn.Connect())
	defer conn.Close()

	rows, err := conn.Query("SELECT id, name, email FROM users ORDER BY id")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Erin", rows[0]["name"])
	assert.Equal(t, "frank@example.com", rows[1]["email"])
}

func TestSQLiteRejectsBadSQL(t *testing.T) {
	conn, err := New(SQLite, testParams, io.Discard)
	require.NoError(t, err)
	require.NoError(t, conn.Connect())
	defer conn.Close()

	_, err = conn.Query("SELECT * FROM missing_table")
	assert.Error(t, err)
}

func TestManagerRunQuery(t *testing.T) {
	var buf bytes.Buffer
	mgr, err := NewManager(Postgres, testParams, &buf)
	require.NoError(t, err)

	require.NoError(t, mgr.RunQuery("SELECT * FROM users LIMIT 2"))

	out := buf.String()
	assert.Contains(t, out, "Results from PostgreSQL")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Closing PostgreSQL connection")
}

func TestManagerUnknownKind(t *testing.T) {
	_, err := NewManager(Kind("dynamo"), testParams, io.Discard)
	assert.ErrorIs(t, err, ErrUnknownDatabase)
}
