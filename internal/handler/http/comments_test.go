package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-social-hub/internal/service"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		CommentService: &mockCommentService{
			createFn: func(_ context.Context, authorID int64, req models.CreateCommentRequest) (models.Comment, error) {
				assert.Equal(t, int64(42), authorID)
				return models.Comment{
					CommentID: 1,
					PostID:    req.PostID,
					AuthorID:  authorID,
					Content:   req.Content,
					Author:    &models.Author{ID: 42, Name: "Gopher", Email: "gopher@example.com", Avatar: ""},
				}, nil
			},
		},
	})

	rr := serveRequest(h, http.MethodPost, "/api/comments",
		`{"content":"Nice post!","postId":5}`, "Bearer token")

	require.Equal(t, http.StatusCreated, rr.Code)

	var comment models.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))
	assert.Equal(t, int64(5), comment.PostID)
	require.NotNil(t, comment.Author, "created comment must carry the author sub-object")
	assert.Equal(t, "gopher@example.com", comment.Author.Email)
}

func TestCreateComment_ZeroPostIDRejected(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService:    authServiceForIdentity(models.Identity{ID: 42}),
		CommentService: &mockCommentService{},
	})

	rr := serveRequest(h, http.MethodPost, "/api/comments",
		`{"content":"Nice post!","postId":0}`, "Bearer token")

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "postId", resp.Details[0].Path)
	assert.Equal(t, "must be a positive integer", resp.Details[0].Message)
}

func TestCreateComment_MissingPost(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		CommentService: &mockCommentService{
			createFn: func(_ context.Context, _ int64, _ models.CreateCommentRequest) (models.Comment, error) {
				return models.Comment{}, store.ErrPostNotFound
			},
		},
	})

	rr := serveRequest(h, http.MethodPost, "/api/comments",
		`{"content":"Nice post!","postId":999}`, "Bearer token")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, rr.Body.String())
}

func TestDeleteComment_ForeignCommentIsForbidden(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		CommentService: &mockCommentService{
			deleteFn: func(_ context.Context, _, _ int64) error {
				return service.ErrNotOwner
			},
		},
	})

	rr := serveRequest(h, http.MethodDelete, "/api/comments/1", "", "Bearer token")

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"You can only delete your own comments"}`, rr.Body.String())
}

func TestDeleteComment_NotFound(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		CommentService: &mockCommentService{
			deleteFn: func(_ context.Context, _, _ int64) error {
				return store.ErrCommentNotFound
			},
		},
	})

	rr := serveRequest(h, http.MethodDelete, "/api/comments/999", "", "Bearer token")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Comment not found"}`, rr.Body.String())
}

func TestDeleteComment_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService:    authServiceForIdentity(models.Identity{ID: 42}),
		CommentService: &mockCommentService{},
	})

	rr := serveRequest(h, http.MethodDelete, "/api/comments/1", "", "Bearer token")

	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestGetCommentsByPost_PublicRoute(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		CommentService: &mockCommentService{
			getByPostFn: func(_ context.Context, postID int64) ([]models.Comment, error) {
				assert.Equal(t, int64(5), postID)
				return []models.Comment{
					{CommentID: 1, PostID: 5, Content: "First!", Author: &models.Author{ID: 42, Name: "Gopher"}},
				}, nil
			},
		},
	})

	rr := serveRequest(h, http.MethodGet, "/api/comments/post/5", "", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var comments []models.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	require.NotNil(t, comments[0].Author)
}
