// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/propal-dashboard/internal/validators"
	"github.com/MKhiriev/propal-dashboard/models"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// AuthValidationService rejects incomplete credential requests before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PublicUser{}, err
	}
	return v.inner.Signup(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PublicUser{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService rejects incomplete profile updates before they
// reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PublicUser{}, err
	}
	return v.inner.UpdateProfile(ctx, req)
}

func (v *UserValidationService) GetUser(ctx context.Context, id string) (models.PublicUser, error) {
	if id == "" {
		return models.PublicUser{}, validators.ErrEmptyUserID
	}
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
