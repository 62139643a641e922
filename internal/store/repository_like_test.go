package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/jackc/pgerrcode"
)

func newTestLikeRepo(t *testing.T) (*likeRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &likeRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateLike_Success(t *testing.T) {
	repo, mock, db := newTestLikeRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO likes").
		WithArgs(int64(5), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.
			NewRows([]string{"user_id", "name", "email", "avatar"}).
			AddRow(42, "Gopher", "gopher@example.com", ""))

	like, err := repo.CreateLike(context.Background(), 5, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if like.PostID != 5 || like.UserID != 42 {
		t.Errorf("unexpected like key: (%d, %d)", like.PostID, like.UserID)
	}
	if like.User == nil || like.User.Name != "Gopher" {
		t.Errorf("expected user profile to be attached, got %+v", like.User)
	}
}

func TestCreateLike_Duplicate(t *testing.T) {
	repo, mock, db := newTestLikeRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO likes").
		WithArgs(int64(5), int64(42)).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateLike(context.Background(), 5, 42)
	if !errors.Is(err, ErrDuplicateLike) {
		t.Fatalf("expected ErrDuplicateLike, got %v", err)
	}
}

func TestCreateLike_MissingPost(t *testing.T) {
	repo, mock, db := newTestLikeRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO likes").
		WithArgs(int64(999), int64(42)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateLike(context.Background(), 999, 42)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDeleteLike_Success(t *testing.T) {
	repo, mock, db := newTestLikeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM likes").
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteLike(context.Background(), 5, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteLike_NotFound(t *testing.T) {
	repo, mock, db := newTestLikeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM likes").
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteLike(context.Background(), 5, 42)
	if !errors.Is(err, ErrLikeNotFound) {
		t.Fatalf("expected ErrLikeNotFound, got %v", err)
	}
}

// Repeating an identical delete yields the same error class both times
// and touches no rows on the second call.
func TestDeleteLike_RepeatedDeleteIsNoop(t *testing.T) {
	repo, mock, db := newTestLikeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM likes").
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM likes").
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteLike(context.Background(), 5, 42); err != nil {
		t.Fatalf("first delete: unexpected error: %v", err)
	}
	if err := repo.DeleteLike(context.Background(), 5, 42); !errors.Is(err, ErrLikeNotFound) {
		t.Fatalf("second delete: expected ErrLikeNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
