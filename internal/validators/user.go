// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/propal-dashboard/models"
)

// Field name constants accepted by [UserValidator.Validate].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserID   = "user_id"
)

// UserValidator validates the request models of the credential endpoints:
// SignupRequest, LoginRequest and UpdateProfileRequest.
//
// Only presence is checked. Email format and password strength are left to
// the client forms.
type UserValidator struct{}

// NewUserValidator returns a [Validator] for credential requests.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are both accepted. When fields is empty the required set of the request
// type is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfile(value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfile(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUpdateProfile(req models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == "" {
				return ErrEmptyUserID
			}
		case FieldUsername:
			if req.Username == "" {
				return ErrEmptyUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
