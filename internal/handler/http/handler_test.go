package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/MKhiriev/go-social-hub/internal/config"
	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/service"
	"github.com/MKhiriev/go-social-hub/internal/validators"
	"github.com/MKhiriev/go-social-hub/models"
)

// ─────────────────────────────────────────────
// Function-field mocks for the service layer
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockUserService struct {
	getUserByIDFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

type mockPostService struct {
	createFn  func(ctx context.Context, authorID int64, request models.CreatePostRequest) (models.Post, error)
	getAllFn  func(ctx context.Context) ([]models.Post, error)
	getByIDFn func(ctx context.Context, postID int64) (models.Post, error)
	updateFn  func(ctx context.Context, postID, actorID int64, request models.UpdatePostRequest) (models.Post, error)
	deleteFn  func(ctx context.Context, postID, actorID int64) error
}

func (m *mockPostService) CreatePost(ctx context.Context, authorID int64, request models.CreatePostRequest) (models.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, authorID, request)
	}
	return models.Post{}, nil
}

func (m *mockPostService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockPostService) GetPostByID(ctx context.Context, postID int64) (models.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return models.Post{}, nil
}

func (m *mockPostService) UpdatePost(ctx context.Context, postID, actorID int64, request models.UpdatePostRequest) (models.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, postID, actorID, request)
	}
	return models.Post{}, nil
}

func (m *mockPostService) DeletePost(ctx context.Context, postID, actorID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID, actorID)
	}
	return nil
}

type mockCommentService struct {
	createFn    func(ctx context.Context, authorID int64, request models.CreateCommentRequest) (models.Comment, error)
	getByPostFn func(ctx context.Context, postID int64) ([]models.Comment, error)
	updateFn    func(ctx context.Context, commentID, actorID int64, request models.UpdateCommentRequest) (models.Comment, error)
	deleteFn    func(ctx context.Context, commentID, actorID int64) error
}

func (m *mockCommentService) CreateComment(ctx context.Context, authorID int64, request models.CreateCommentRequest) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, authorID, request)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.getByPostFn != nil {
		return m.getByPostFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockCommentService) UpdateComment(ctx context.Context, commentID, actorID int64, request models.UpdateCommentRequest) (models.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, commentID, actorID, request)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, commentID, actorID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, commentID, actorID)
	}
	return nil
}

type mockLikeService struct {
	likeFn      func(ctx context.Context, postID, userID int64) (models.Like, error)
	getByPostFn func(ctx context.Context, postID int64) ([]models.Like, error)
	unlikeFn    func(ctx context.Context, postID, userID int64) error
}

func (m *mockLikeService) LikePost(ctx context.Context, postID, userID int64) (models.Like, error) {
	if m.likeFn != nil {
		return m.likeFn(ctx, postID, userID)
	}
	return models.Like{}, nil
}

func (m *mockLikeService) GetLikesByPostID(ctx context.Context, postID int64) ([]models.Like, error) {
	if m.getByPostFn != nil {
		return m.getByPostFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockLikeService) UnlikePost(ctx context.Context, postID, userID int64) error {
	if m.unlikeFn != nil {
		return m.unlikeFn(ctx, postID, userID)
	}
	return nil
}

type mockFollowService struct {
	followFn       func(ctx context.Context, followerID, followingID int64) (models.Follow, error)
	getFollowersFn func(ctx context.Context, userID int64) ([]models.Follow, error)
	getFollowingFn func(ctx context.Context, userID int64) ([]models.Follow, error)
	unfollowFn     func(ctx context.Context, followerID, followingID int64) error
}

func (m *mockFollowService) FollowUser(ctx context.Context, followerID, followingID int64) (models.Follow, error) {
	if m.followFn != nil {
		return m.followFn(ctx, followerID, followingID)
	}
	return models.Follow{}, nil
}

func (m *mockFollowService) GetFollowers(ctx context.Context, userID int64) ([]models.Follow, error) {
	if m.getFollowersFn != nil {
		return m.getFollowersFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowService) GetFollowing(ctx context.Context, userID int64) ([]models.Follow, error) {
	if m.getFollowingFn != nil {
		return m.getFollowingFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowService) UnfollowUser(ctx context.Context, followerID, followingID int64) error {
	if m.unfollowFn != nil {
		return m.unfollowFn(ctx, followerID, followingID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		logger:    logger.Nop(),
	}
}

func testRateLimit() config.RateLimit {
	return config.RateLimit{
		RequestLimit:     1000,
		WindowLength:     time.Minute,
		AuthRequestLimit: 1000,
		AuthWindowLength: time.Minute,
	}
}

// authServiceForIdentity builds an AuthService whose ParseToken always
// succeeds with the given identity, so router-level tests can exercise
// authenticated routes with any bearer token.
func authServiceForIdentity(identity models.Identity) service.AuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Identity: identity}, nil
		},
	}
}

// serveRequest runs a request through the fully initialised router,
// including the middleware chain.
func serveRequest(h *Handler, method, target, body, authHeader string) *httptest.ResponseRecorder {
	router := h.Init(testRateLimit())

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// injectNopLogger puts a nop logger into the request context for tests
// that call handler methods directly, bypassing the middleware chain.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
