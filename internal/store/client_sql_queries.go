// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/propal-dashboard/models"
)

// sqlite uses the default "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const sessionSlot = 1

func buildSaveSessionQuery(cookieName, cookieValue, userJSON string, expiresAt, savedAt time.Time) (string, []any, error) {
	return sqlite.
		Insert("sessions").
		Columns("slot", "cookie_name", "cookie_value", "user_json", "expires_at", "saved_at").
		Values(sessionSlot, cookieName, cookieValue, userJSON, expiresAt, savedAt).
		Suffix(`ON CONFLICT(slot) DO UPDATE SET
			cookie_name = excluded.cookie_name,
			cookie_value = excluded.cookie_value,
			user_json = excluded.user_json,
			expires_at = excluded.expires_at,
			saved_at = excluded.saved_at`).
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return sqlite.
		Select("cookie_name", "cookie_value", "user_json", "expires_at").
		From("sessions").
		Where(sq.Eq{"slot": sessionSlot}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sqlite.
		Delete("sessions").
		Where(sq.Eq{"slot": sessionSlot}).
		ToSql()
}

func buildSavePreferencesQuery(userID string, sel models.STTSelection, updatedAt time.Time) (string, []any, error) {
	return sqlite.
		Insert("stt_preferences").
		Columns("user_id", "provider", "model", "language", "updated_at").
		Values(userID, sel.Provider, sel.Model, sel.Language, updatedAt).
		Suffix(`ON CONFLICT(user_id) DO UPDATE SET
			provider = excluded.provider,
			model = excluded.model,
			language = excluded.language,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildLoadPreferencesQuery(userID string) (string, []any, error) {
	return sqlite.
		Select("provider", "model", "language").
		From("stt_preferences").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
