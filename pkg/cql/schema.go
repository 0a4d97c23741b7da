package cql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gocql/gocql"
)

// DefaultTable is the session table name used unless overridden via WithTable.
const DefaultTable = "sessions"

// EnsureSchema provisions the session table and its secondary indexes with
// create-if-absent statements. It is safe to run on every startup; the
// keyspace itself must already exist. The secondary indexes back operational
// queries (expiry sweeps, lock inspection), not the provider's hot path,
// which always hits the primary key.
func EnsureSchema(ctx context.Context, sess *gocql.Session, table string) error {
	stmts := []string{
		createTableStmt(table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_date_expires_idx ON %s (date_expires)", table, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_lock_id_idx ON %s (lock_id)", table, table),
	}

	for _, stmt := range stmts {
		if err := sess.Query(stmt).WithContext(ctx).Exec(); err != nil {
			return errors.Join(ErrFailedToEnsureSchema, err)
		}
	}
	return nil
}

func createTableStmt(table string) string {
	defs := make([]string, 0, len(recordColumns)+1)
	for _, c := range recordColumns {
		defs = append(defs, c.name+" "+c.cqlType)
	}
	defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(keyColumnNames(), ", ")))
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", "))
}
