// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingRequiredFields is wrapped by every "field is empty" error so
	// callers can map all of them to one response.
	ErrMissingRequiredFields = errors.New("missing required fields")

	ErrEmptyUsername = missingField("username")
	ErrEmptyEmail    = missingField("email")
	ErrEmptyPassword = missingField("password")
	ErrEmptyUserID   = missingField("userId")
)

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return "missing required field: " + e.field
}

func (e *missingFieldError) Unwrap() error {
	return ErrMissingRequiredFields
}

func missingField(field string) error {
	return &missingFieldError{field: field}
}
