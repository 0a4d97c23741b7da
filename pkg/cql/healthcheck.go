package cql

import (
	"context"
	"errors"

	"github.com/gocql/gocql"
)

// Healthcheck returns a closure that validates cluster connectivity for
// health endpoints, compatible with checkers expecting func(ctx) error.
func Healthcheck(sess *gocql.Session) func(context.Context) error {
	return func(ctx context.Context) error {
		var version string
		if err := sess.Query("SELECT release_version FROM system.local").
			WithContext(ctx).Scan(&version); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
