// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor of stored password hashes.
const PasswordCost = bcrypt.DefaultCost

// dummyPasswordHash is compared against when no account exists so a login
// for an unknown email costs the same as one with a wrong password.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("propal-dummy-password"), PasswordCost)

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// BurnPasswordCheck runs one bcrypt comparison against a fixed hash and
// discards the result.
func BurnPasswordCheck(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(plain))
}
