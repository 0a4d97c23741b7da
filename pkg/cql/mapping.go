package cql

import (
	"fmt"
	"strings"
)

// column maps one Record field onto its CQL column. The mapping is a static
// table rather than struct-tag reflection: the schema, the queries and the
// scan order are all derived from this one place, and a test pins it down.
type column struct {
	name    string
	cqlType string
	key     bool
}

// recordColumns is ordered; query building and row scanning both rely on
// this order, so changing it is a schema-affecting edit.
var recordColumns = []column{
	{name: "session_id", cqlType: "text", key: true},
	{name: "application_name", cqlType: "text", key: true},
	{name: "date_created", cqlType: "timestamp"},
	{name: "date_expires", cqlType: "timestamp"},
	{name: "date_lock", cqlType: "timestamp"},
	{name: "lock_id", cqlType: "int"},
	{name: "is_locked", cqlType: "boolean"},
	{name: "flags", cqlType: "int"},
	{name: "items", cqlType: "blob"},
}

func columnNames() []string {
	names := make([]string, len(recordColumns))
	for i, c := range recordColumns {
		names[i] = c.name
	}
	return names
}

func keyColumnNames() []string {
	var names []string
	for _, c := range recordColumns {
		if c.key {
			names = append(names, c.name)
		}
	}
	return names
}

func selectStmt(table string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		strings.Join(columnNames(), ", "), table, keyPredicate())
}

func insertStmt(table string) string {
	names := columnNames()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(names, ", "), placeholders)
}

func insertTTLStmt(table string) string {
	return insertStmt(table) + " USING TTL ?"
}

func deleteStmt(table string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s", table, keyPredicate())
}

func keyPredicate() string {
	keys := keyColumnNames()
	preds := make([]string, len(keys))
	for i, k := range keys {
		preds[i] = k + " = ?"
	}
	return strings.Join(preds, " AND ")
}
