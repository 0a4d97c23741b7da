package cql

import "errors"

var (
	ErrNoHosts              = errors.New("no cassandra contact points configured")
	ErrInvalidConsistency   = errors.New("invalid cassandra consistency level")
	ErrClusterNotReady      = errors.New("cassandra cluster did not become ready within the given time period")
	ErrHealthcheckFailed    = errors.New("cassandra healthcheck failed")
	ErrFailedToEnsureSchema = errors.New("failed to ensure session schema")
)
