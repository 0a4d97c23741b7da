// Package redis provides a Redis-backed session.Store for deployments that
// do not need a multi-region column store. The whole record is stored as a
// single JSON value per key, so every Save stays one atomic write and the
// provider's lock protocol behaves exactly as it does on Cassandra.
//
// The package wraps the go-redis client and adds:
//
//   - Robust `Connect` which retries the connection using the supplied
//     configuration.
//   - `Store`, the session.Store gateway implementation.
//   - A health-check helper for liveness / readiness probes.
//
// Keys expire server-side at the record's own expiry. That TTL is a
// backstop: the provider still treats the stored expiry timestamp as the
// authority and deletes expired records it happens to read.
//
// # Usage
//
//	ctx := context.Background()
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	store := redis.NewStore(client)
//	provider := session.New(store, session.WithApplicationName("shop"))
package redis
