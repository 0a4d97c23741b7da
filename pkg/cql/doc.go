// Package cql provides the Cassandra backend for the session provider,
// built on the gocql driver. It covers connection bootstrap, health checks,
// idempotent schema provisioning, and a Store implementation that satisfies
// the session.Store gateway.
//
// The package wraps gocql and adds:
//
//   - Robust `Connect` which retries cluster session creation using the
//     supplied configuration.
//   - `EnsureSchema` for one-time, create-if-absent provisioning of the
//     session table and its secondary indexes.
//   - `Store`, a thin gateway doing point lookups, full-row upserts and
//     deletes — no conflict detection and no retries; both belong to the
//     layers around it.
//
// Configuration is described by the `Config` struct whose fields can be
// populated from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	ctx := context.Background()
//
//	var cfg cql.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
//	sess, err := cql.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer sess.Close()
//
//	if err := cql.EnsureSchema(ctx, sess, cql.DefaultTable); err != nil {
//	    // handle error
//	}
//
//	store := cql.NewStore(sess)
//	provider := session.New(store, session.WithApplicationName("shop"))
//
// # Consistency
//
// The session lock protocol needs read-your-writes within one provider
// process. The default consistency is QUORUM on both reads and writes,
// which gives that property on clusters with a replication factor above
// one; tune Config.Consistency down only for single-node setups.
//
// # Expiration backstop
//
// Record expiry is enforced by the provider, which deletes expired records
// on read. NewStore can additionally write rows with a server-side TTL
// (WithTTLGrace) so rows the provider never touches again are eventually
// reclaimed by Cassandra itself. The TTL is a backstop, never the
// authority: it always trails the record's own expiry by the grace period.
package cql
