// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/propal-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	signup := models.SignupRequest{Username: "alice", Email: "a@x.com", Password: "secret1"}
	login := models.LoginRequest{Email: "a@x.com", Password: "secret1"}
	update := models.UpdateProfileRequest{UserID: "u1", Username: "alice"}

	require.NoError(t, v.Validate(ctx, signup))
	require.NoError(t, v.Validate(ctx, &signup))
	require.NoError(t, v.Validate(ctx, login))
	require.NoError(t, v.Validate(ctx, &login))
	require.NoError(t, v.Validate(ctx, update))
	require.NoError(t, v.Validate(ctx, &update))

	assert.ErrorIs(t, v.Validate(ctx, "nope"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, signup, "company"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_MissingFields
// ---------------------------------------------------------------------------

func TestValidate_MissingFields(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "signup without username", obj: models.SignupRequest{Email: "a@x.com", Password: "p"}, wantErr: ErrEmptyUsername},
		{name: "signup without email", obj: models.SignupRequest{Username: "a", Password: "p"}, wantErr: ErrEmptyEmail},
		{name: "signup without password", obj: models.SignupRequest{Username: "a", Email: "a@x.com"}, wantErr: ErrEmptyPassword},
		{name: "login without email", obj: models.LoginRequest{Password: "p"}, wantErr: ErrEmptyEmail},
		{name: "login without password", obj: models.LoginRequest{Email: "a@x.com"}, wantErr: ErrEmptyPassword},
		{name: "update without id", obj: models.UpdateProfileRequest{Username: "a"}, wantErr: ErrEmptyUserID},
		{name: "update without username", obj: models.UpdateProfileRequest{UserID: "u1"}, wantErr: ErrEmptyUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
		})
	}
}

func TestValidate_OptionalFieldsIgnored(t *testing.T) {
	v := NewUserValidator()

	// phone number and company are optional
	assert.NoError(t, v.Validate(context.Background(), models.SignupRequest{Username: "a", Email: "a@x.com", Password: "p"}))
	assert.NoError(t, v.Validate(context.Background(), models.UpdateProfileRequest{UserID: "u1", Username: "a"}))
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewUserValidator()

	// only the email is checked, the missing password is not reported
	err := v.Validate(context.Background(), models.LoginRequest{Email: "a@x.com"}, FieldEmail)
	assert.NoError(t, err)
}
