package cql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordMapping(t *testing.T) {
	t.Run("column order is pinned", func(t *testing.T) {
		// Scan order in Store.Find and bind order in Store.Save both follow
		// this list; reordering it is a breaking change.
		assert.Equal(t, []string{
			"session_id", "application_name", "date_created", "date_expires",
			"date_lock", "lock_id", "is_locked", "flags", "items",
		}, columnNames())
	})

	t.Run("composite key", func(t *testing.T) {
		assert.Equal(t, []string{"session_id", "application_name"}, keyColumnNames())
	})
}

func TestStatements(t *testing.T) {
	t.Run("select", func(t *testing.T) {
		assert.Equal(t,
			"SELECT session_id, application_name, date_created, date_expires, "+
				"date_lock, lock_id, is_locked, flags, items "+
				"FROM sessions WHERE session_id = ? AND application_name = ?",
			selectStmt("sessions"))
	})

	t.Run("insert", func(t *testing.T) {
		assert.Equal(t,
			"INSERT INTO sessions (session_id, application_name, date_created, "+
				"date_expires, date_lock, lock_id, is_locked, flags, items) "+
				"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			insertStmt("sessions"))
	})

	t.Run("insert with ttl", func(t *testing.T) {
		assert.Equal(t, insertStmt("sessions")+" USING TTL ?", insertTTLStmt("sessions"))
	})

	t.Run("delete", func(t *testing.T) {
		assert.Equal(t,
			"DELETE FROM sessions WHERE session_id = ? AND application_name = ?",
			deleteStmt("sessions"))
	})
}

func TestCreateTableStmt(t *testing.T) {
	stmt := createTableStmt("sessions")

	assert.Contains(t, stmt, "CREATE TABLE IF NOT EXISTS sessions")
	assert.Contains(t, stmt, "PRIMARY KEY (session_id, application_name)")
	for _, c := range recordColumns {
		assert.Contains(t, stmt, c.name+" "+c.cqlType)
	}
}
