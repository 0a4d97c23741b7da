package cql

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"
)

// Connect establishes a session to the Cassandra cluster using the provided
// configuration. It attempts to connect multiple times based on the
// RetryAttempts config value, with a delay between attempts specified by
// RetryInterval, so services can start while the cluster is still coming up.
func Connect(ctx context.Context, cfg Config) (*gocql.Session, error) {
	if len(cfg.Hosts) == 0 {
		return nil, ErrNoHosts
	}

	consistency, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
	if err != nil {
		return nil, errors.Join(ErrInvalidConsistency, err)
	}

	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = consistency
	cluster.ConnectTimeout = cfg.ConnectTimeout
	cluster.Timeout = cfg.QueryTimeout
	if cfg.Compression {
		cluster.Compressor = gocql.SnappyCompressor{}
	}

	var lastErr error
	for attempt := 0; attempt < cfg.RetryAttempts; attempt++ {
		sess, err := cluster.CreateSession()
		if err == nil {
			return sess, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrClusterNotReady, ctx.Err(), lastErr)
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrClusterNotReady, lastErr)
}
