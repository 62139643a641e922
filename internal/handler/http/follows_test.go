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

func TestFollowUser_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		FollowService: &mockFollowService{
			followFn: func(_ context.Context, followerID, followingID int64) (models.Follow, error) {
				assert.Equal(t, int64(42), followerID)
				assert.Equal(t, int64(7), followingID)
				return models.Follow{
					FollowerID:  followerID,
					FollowingID: followingID,
					Follower:    &models.Author{ID: followerID, Name: "Gopher"},
					Following:   &models.Author{ID: followingID, Name: "Rob"},
				}, nil
			},
		},
	})

	rr := serveRequest(h, http.MethodPost, "/api/follows/7", "", "Bearer token")

	require.Equal(t, http.StatusCreated, rr.Code)

	var follow models.Follow
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &follow))
	require.NotNil(t, follow.Follower)
	require.NotNil(t, follow.Following)
}

func TestFollowUser_SelfFollow(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		FollowService: &mockFollowService{
			followFn: func(_ context.Context, _, _ int64) (models.Follow, error) {
				return models.Follow{}, service.ErrSelfFollow
			},
		},
	})

	rr := serveRequest(h, http.MethodPost, "/api/follows/42", "", "Bearer token")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"You cannot follow yourself"}`, rr.Body.String())
}

func TestFollowUser_Duplicate(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		FollowService: &mockFollowService{
			followFn: func(_ context.Context, _, _ int64) (models.Follow, error) {
				return models.Follow{}, store.ErrDuplicateFollow
			},
		},
	})

	rr := serveRequest(h, http.MethodPost, "/api/follows/7", "", "Bearer token")

	require.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"Already following this user"}`, rr.Body.String())
}

func TestUnfollowUser_WithoutRelationship(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: authServiceForIdentity(models.Identity{ID: 42}),
		FollowService: &mockFollowService{
			unfollowFn: func(_ context.Context, _, _ int64) error {
				return store.ErrFollowNotFound
			},
		},
	})

	rr := serveRequest(h, http.MethodDelete, "/api/follows/7", "", "Bearer token")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Follow relationship not found"}`, rr.Body.String())
}

func TestGetFollowers_PublicRoute(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		FollowService: &mockFollowService{
			getFollowersFn: func(_ context.Context, userID int64) ([]models.Follow, error) {
				assert.Equal(t, int64(7), userID)
				return []models.Follow{
					{FollowerID: 42, FollowingID: 7, Follower: &models.Author{ID: 42, Name: "Gopher"}},
				}, nil
			},
		},
	})

	rr := serveRequest(h, http.MethodGet, "/api/follows/followers/7", "", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var follows []models.Follow
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &follows))
	require.Len(t, follows, 1)
	require.NotNil(t, follows[0].Follower)
}

func TestGetFollowing_PublicRoute(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		FollowService: &mockFollowService{
			getFollowingFn: func(_ context.Context, userID int64) ([]models.Follow, error) {
				return []models.Follow{
					{FollowerID: userID, FollowingID: 7, Following: &models.Author{ID: 7, Name: "Rob"}},
				}, nil
			},
		},
	})

	rr := serveRequest(h, http.MethodGet, "/api/follows/following/42", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
}
