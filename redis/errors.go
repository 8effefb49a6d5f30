package redis

import "errors"

var (
	// ErrInvalidConnectionURL is returned when the Redis URL cannot be parsed.
	ErrInvalidConnectionURL = errors.New("redis.invalid_connection_url")

	// ErrNotReady is returned when the server does not answer a ping within
	// the configured attempts.
	ErrNotReady = errors.New("redis.not_ready")

	// ErrHealthcheckFailed is returned by the healthcheck probe.
	ErrHealthcheckFailed = errors.New("redis.healthcheck_failed")
)
