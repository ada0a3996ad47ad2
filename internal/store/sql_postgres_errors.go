// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// errorClass tells whether a failed statement is worth running again.
type errorClass int

const (
	nonRetryable errorClass = iota
	retryable
)

// readRetryDelays are the pauses between attempts of an idempotent read.
var readRetryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

// classifyPostgresError maps a driver error to an [errorClass]. Connection
// loss, serialization failures and deadlocks are transient; everything
// else, including constraint violations, is final.
func classifyPostgresError(err error) errorClass {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nonRetryable
	}

	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return retryable
	}

	return nonRetryable
}

// withReadRetry runs fn and repeats it while it fails with a transient
// PostgreSQL error. Only reads go through here; inserts and updates are
// never replayed.
func withReadRetry[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	res, err := fn()
	for _, delay := range readRetryDelays {
		if err == nil || classifyPostgresError(err) != retryable {
			return res, err
		}

		select {
		case <-ctx.Done():
			return res, ctx.Err()
		case <-time.After(delay):
		}

		res, err = fn()
	}

	return res, err
}
