// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/propal-dashboard/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"company",
	"phone_number",
	"created_at",
}

const userReturning = "RETURNING id, username, email, password_hash, company, phone_number, created_at"

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Username,
			user.Email,
			user.PasswordHash,
			user.Company,
			user.PhoneNumber,
			user.CreatedAt,
		).
		Suffix(userReturning).
		ToSql()
}

func buildFindUserQuery(column, value string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildUpdateProfileQuery updates both mutable fields in one statement so a
// concurrent update of the same row is applied whole or not at all.
func buildUpdateProfileQuery(id, username, company string) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("username", username).
		Set("company", company).
		Where(sq.Eq{"id": id}).
		Suffix(userReturning).
		ToSql()
}
