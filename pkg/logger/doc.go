// Package logger provides slog helpers for the session provider: a small
// factory configured from environment variables and attribute constructors
// with the field names the rest of the library uses, so log aggregation
// sees one vocabulary (`session_id`, `application_name`, `lock_id`).
//
// # Usage
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
//	log := logger.New(cfg)
//	provider := session.New(store, session.WithLogger(log))
//
//	log.Warn("session lock contention",
//	    logger.SessionID(id),
//	    logger.LockID(lockID),
//	)
package logger
