package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.CommentRepository
// ─────────────────────────────────────────────

type mockCommentRepository struct {
	createFn    func(ctx context.Context, comment models.Comment) (models.Comment, error)
	getByPostFn func(ctx context.Context, postID int64) ([]models.Comment, error)
	getByIDFn   func(ctx context.Context, commentID int64) (models.Comment, error)
	updateFn    func(ctx context.Context, commentID int64, update models.UpdateCommentRequest) (models.Comment, error)
	deleteFn    func(ctx context.Context, commentID int64) error
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentRepository) GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.getByPostFn != nil {
		return m.getByPostFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockCommentRepository) GetCommentByID(ctx context.Context, commentID int64) (models.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, commentID)
	}
	return models.Comment{}, nil
}

func (m *mockCommentRepository) UpdateComment(ctx context.Context, commentID int64, update models.UpdateCommentRequest) (models.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, commentID, update)
	}
	return models.Comment{}, nil
}

func (m *mockCommentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, commentID)
	}
	return nil
}

func newTestCommentSvc(repo *mockCommentRepository) *commentService {
	return &commentService{
		commentRepository: repo,
		logger:            logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// CreateComment
// ─────────────────────────────────────────────

func TestCommentService_CreateComment_AuthorFromToken(t *testing.T) {
	repo := &mockCommentRepository{
		createFn: func(_ context.Context, c models.Comment) (models.Comment, error) {
			assert.Equal(t, int64(42), c.AuthorID)
			assert.Equal(t, int64(5), c.PostID)
			c.CommentID = 1
			return c, nil
		},
	}
	svc := newTestCommentSvc(repo)

	created, err := svc.CreateComment(context.Background(), 42, models.CreateCommentRequest{
		Content: "Nice post!",
		PostID:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.CommentID)
}

func TestCommentService_CreateComment_MissingPost(t *testing.T) {
	repo := &mockCommentRepository{
		createFn: func(_ context.Context, _ models.Comment) (models.Comment, error) {
			return models.Comment{}, store.ErrPostNotFound
		},
	}
	svc := newTestCommentSvc(repo)

	_, err := svc.CreateComment(context.Background(), 42, models.CreateCommentRequest{
		Content: "Nice post!",
		PostID:  999,
	})

	require.ErrorIs(t, err, store.ErrPostNotFound)
}

// ─────────────────────────────────────────────
// DeleteComment
// ─────────────────────────────────────────────

func TestCommentService_DeleteComment_NotOwner(t *testing.T) {
	deleted := false
	repo := &mockCommentRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.Comment, error) {
			return models.Comment{CommentID: 1, AuthorID: 7}, nil
		},
		deleteFn: func(_ context.Context, _ int64) error {
			deleted = true
			return nil
		},
	}
	svc := newTestCommentSvc(repo)

	err := svc.DeleteComment(context.Background(), 1, 42)

	require.ErrorIs(t, err, ErrNotOwner)
	assert.False(t, deleted, "comment must not be deleted when the actor is not the author")
}

func TestCommentService_DeleteComment_OwnerSucceeds(t *testing.T) {
	repo := &mockCommentRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.Comment, error) {
			return models.Comment{CommentID: 1, AuthorID: 42}, nil
		},
	}
	svc := newTestCommentSvc(repo)

	require.NoError(t, svc.DeleteComment(context.Background(), 1, 42))
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	repo := &mockCommentRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.Comment, error) {
			return models.Comment{}, store.ErrCommentNotFound
		},
	}
	svc := newTestCommentSvc(repo)

	require.ErrorIs(t, svc.DeleteComment(context.Background(), 999, 42), store.ErrCommentNotFound)
}

// ─────────────────────────────────────────────
// UpdateComment
// ─────────────────────────────────────────────

func TestCommentService_UpdateComment_NotOwner(t *testing.T) {
	repo := &mockCommentRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.Comment, error) {
			return models.Comment{CommentID: 1, AuthorID: 7}, nil
		},
	}
	svc := newTestCommentSvc(repo)

	content := "Hijacked"
	_, err := svc.UpdateComment(context.Background(), 1, 42, models.UpdateCommentRequest{Content: &content})
	require.ErrorIs(t, err, ErrNotOwner)
}

func TestCommentService_UpdateComment_EmptyUpdateIsNoop(t *testing.T) {
	current := models.Comment{CommentID: 1, AuthorID: 42, Content: "Original"}

	updated := false
	repo := &mockCommentRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.Comment, error) {
			return current, nil
		},
		updateFn: func(_ context.Context, _ int64, _ models.UpdateCommentRequest) (models.Comment, error) {
			updated = true
			return models.Comment{}, nil
		},
	}
	svc := newTestCommentSvc(repo)

	comment, err := svc.UpdateComment(context.Background(), 1, 42, models.UpdateCommentRequest{})

	require.NoError(t, err)
	assert.Equal(t, current, comment, "an update with no fields must return the current comment")
	assert.False(t, updated, "an update with no fields must not reach storage")
}
