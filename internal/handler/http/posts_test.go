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

func TestCreatePost_RequiresAuthentication(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	rr := serveRequest(h, http.MethodPost, "/api/posts",
		`{"title":"Hello","content":"A long enough content."}`, "")

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Please authenticate."}`, rr.Body.String())
}

func TestCreatePost_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		PostService: &mockPostService{
			createFn: func(_ context.Context, authorID int64, req models.CreatePostRequest) (models.Post, error) {
				assert.Equal(t, int64(42), authorID)
				return models.Post{
					PostID:   1,
					AuthorID: authorID,
					Title:    req.Title,
					Content:  req.Content,
					Author:   &models.Author{ID: 42, Name: "Gopher", Email: "gopher@example.com"},
				}, nil
			},
		},
	})

	rr := serveRequest(h, http.MethodPost, "/api/posts",
		`{"title":"Hello","content":"A long enough content."}`, "Bearer token")

	require.Equal(t, http.StatusCreated, rr.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, int64(1), post.PostID)
	require.NotNil(t, post.Author)
	assert.Equal(t, "Gopher", post.Author.Name)
}

func TestCreatePost_ValidationFailure(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		PostService: &mockPostService{},
	})

	rr := serveRequest(h, http.MethodPost, "/api/posts",
		`{"title":"Hi","content":"short"}`, "Bearer token")

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Len(t, resp.Details, 2)
}

// Missing post and foreign post produce the same 404 body on mutations.
func TestUpdatePost_CollapsesForbiddenIntoNotFound(t *testing.T) {
	for name, svcErr := range map[string]error{
		"missing post": store.ErrPostNotFound,
		"foreign post": service.ErrNotOwner,
	} {
		t.Run(name, func(t *testing.T) {
			h := newTestHandler(&service.Services{
				AuthService: authServiceForIdentity(models.Identity{ID: 42}),
				PostService: &mockPostService{
					updateFn: func(_ context.Context, _, _ int64, _ models.UpdatePostRequest) (models.Post, error) {
						return models.Post{}, svcErr
					},
				},
			})

			rr := serveRequest(h, http.MethodPut, "/api/posts/1",
				`{"title":"Updated title"}`, "Bearer token")

			require.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"Post not found or unauthorized"}`, rr.Body.String())
		})
	}
}

func TestDeletePost_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		PostService: &mockPostService{
			deleteFn: func(_ context.Context, postID, actorID int64) error {
				assert.Equal(t, int64(5), postID)
				assert.Equal(t, int64(42), actorID)
				return nil
			},
		},
	})

	rr := serveRequest(h, http.MethodDelete, "/api/posts/5", "", "Bearer token")

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeletePost_RepeatedDeleteReturnsNotFound(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		PostService: &mockPostService{
			deleteFn: func(_ context.Context, _, _ int64) error {
				return store.ErrPostNotFound
			},
		},
	})

	rr := serveRequest(h, http.MethodDelete, "/api/posts/5", "", "Bearer token")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Post not found or unauthorized"}`, rr.Body.String())
}

func TestGetAllPosts_PublicRoute(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		PostService: &mockPostService{
			getAllFn: func(_ context.Context) ([]models.Post, error) {
				return []models.Post{
					{PostID: 2, Title: "Newer"},
					{PostID: 1, Title: "Older"},
				}, nil
			},
		},
	})

	rr := serveRequest(h, http.MethodGet, "/api/posts", "", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, int64(2), posts[0].PostID, "newest first")
}

func TestGetPost_NotFound(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		PostService: &mockPostService{
			getByIDFn: func(_ context.Context, _ int64) (models.Post, error) {
				return models.Post{}, store.ErrPostNotFound
			},
		},
	})

	rr := serveRequest(h, http.MethodGet, "/api/posts/999", "", "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, rr.Body.String())
}

func TestGetPost_InvalidID(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		PostService: &mockPostService{},
	})

	rr := serveRequest(h, http.MethodGet, "/api/posts/abc", "", "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
