package redis

import "errors"

// Sentinel errors for the redis package.
var (
	// ErrEmptyConnectionURL is returned by Open when no connection URL
	// was given.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")

	// ErrFailedToParseURL is returned when the connection URL or its
	// scheme is malformed.
	ErrFailedToParseURL = errors.New("redis: failed to parse connection URL")

	// ErrConnectionFailed is returned once every retry attempt failed.
	ErrConnectionFailed = errors.New("redis: failed to establish connection")

	// ErrHealthcheckFailed is returned by the readiness probe when the
	// server does not answer the ping.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
