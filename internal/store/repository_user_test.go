// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.Email, u.PasswordHash, u.Company, u.PhoneNumber, u.CreatedAt)
	}
	return rows
}

func sampleUser() models.User {
	return models.User{
		ID:           "0192f5a4-0000-7000-8000-000000000001",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		PhoneNumber:  "+911234567890",
		CreatedAt:    time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := sampleUser()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.Company, user.PhoneNumber, user.CreatedAt).
		WillReturnRows(userRows(user))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != user {
		t.Errorf("expected %+v, got %+v", user, created)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), sampleUser())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), sampleUser())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if !strings.Contains(err.Error(), "db network error") {
		t.Errorf("expected driver error to be kept, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("x")) // wrong shape → scan error

	if _, err := repo.CreateUser(context.Background(), sampleUser()); err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := sampleUser()
	mock.ExpectQuery("SELECT id, username, email").
		WithArgs(user.Email).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.PasswordHash != user.PasswordHash {
		t.Errorf("expected hash %s, got %s", user.PasswordHash, found.PasswordHash)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, email").
		WithArgs("ghost@example.com").
		WillReturnRows(userRows())

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := sampleUser()
	mock.ExpectQuery("SELECT id, username, email").
		WithArgs(user.ID).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, found.Email)
	}
}

func TestFindUserByID_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, email").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(context.Background(), "id")
	if !errors.Is(err, ErrExecutingQuery) || errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := sampleUser()
	updated := user
	updated.Username = "alice2"
	updated.Company = "PropAl"

	mock.ExpectQuery("UPDATE users SET username").
		WithArgs("alice2", "PropAl", user.ID).
		WillReturnRows(userRows(updated))

	got, err := repo.UpdateProfile(context.Background(), user.ID, "alice2", "PropAl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != updated {
		t.Errorf("expected %+v, got %+v", updated, got)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users SET username").
		WithArgs("bob", "", "missing").
		WillReturnRows(userRows())

	_, err := repo.UpdateProfile(context.Background(), "missing", "bob", "")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfile_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users SET username").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.UpdateProfile(context.Background(), "id", "alice2", "")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestPing(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("down"))

	if err := repo.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error, got nil")
	}
}

func TestPostgresError(t *testing.T) {
	if got := postgresError(pgError(pgerrcode.UniqueViolation)); got != pgerrcode.UniqueViolation {
		t.Errorf("expected %s, got %s", pgerrcode.UniqueViolation, got)
	}
	if got := postgresError(errors.New("plain")); got != "" {
		t.Errorf("expected empty code, got %s", got)
	}
}
