package logger

import (
	"log/slog"
	"time"
)

// SessionID records the session identifier under the key "session_id".
func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

// ApplicationName records the application partition under the key "application_name".
func ApplicationName(name string) slog.Attr {
	return slog.String("application_name", name)
}

// LockID records a lock id under the key "lock_id".
func LockID(id int32) slog.Attr {
	return slog.Int64("lock_id", int64(id))
}

// LockAge records how long a lock has been held under the key "lock_age".
func LockAge(age time.Duration) slog.Attr {
	return slog.Duration("lock_age", age)
}
