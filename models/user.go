// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account record as it is persisted by the user store.
// The password hash must never leave the server; use [User.Public] to get the
// projection that is safe to send to clients or embed into a session cookie.
type User struct {
	// ID is the opaque unique identifier assigned at signup.
	ID string `json:"id"`

	// Username is the display name. Required, mutable, not unique.
	Username string `json:"username"`

	// Email is the unique login key. Compared case-sensitively and never
	// changed after creation.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Stored under the "password" key to stay compatible with existing
	// users.json documents.
	PasswordHash string `json:"password"`

	// Company is an optional, mutable organisation name.
	Company string `json:"company,omitempty"`

	// PhoneNumber is an optional contact number set at signup.
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the sanitized projection of [User]: every field except the
// password hash.
type PublicUser struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Company     string     `json:"company,omitempty"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Public returns the sanitized projection of u.
func (u User) Public() PublicUser {
	pub := PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Company:     u.Company,
		PhoneNumber: u.PhoneNumber,
	}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		pub.CreatedAt = &createdAt
	}

	return pub
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
