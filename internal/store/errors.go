// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email
	// (exact, case-sensitive match) is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the requested key.
	ErrUserNotFound = errors.New("user not found")

	// ErrMalformedUsersFile is returned by mutating operations of the file
	// repository when the users file exists but cannot be decoded. The file
	// is left untouched so that no data is silently discarded.
	ErrMalformedUsersFile = errors.New("users file is malformed")

	// ErrLocalSessionNotFound is returned by the client store when no session
	// cookie has been persisted.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrPreferencesNotFound is returned by the client store when the user has
	// not saved any speech-to-text preferences yet.
	ErrPreferencesNotFound = errors.New("stt preferences not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
