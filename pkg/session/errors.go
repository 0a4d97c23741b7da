package session

import "errors"

var (
	// ErrSessionNotFound indicates no record exists for the session key
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrLockMismatch indicates the caller's lock id no longer matches the stored one
	ErrLockMismatch = errors.New("session.lock_mismatch")

	// ErrDuplicateSession indicates a new-item save collided with a live record
	ErrDuplicateSession = errors.New("session.duplicate")

	// ErrSerialization indicates the payload could not be encoded or decoded
	ErrSerialization = errors.New("session.serialization_failed")

	// ErrInvalidRecord indicates a record without a session id or application name
	ErrInvalidRecord = errors.New("session.invalid_record")
)
