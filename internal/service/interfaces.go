package service

import (
	"context"

	"github.com/MKhiriev/go-social-hub/models"
)

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

type PostService interface {
	CreatePost(ctx context.Context, authorID int64, request models.CreatePostRequest) (models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID int64) (models.Post, error)
	UpdatePost(ctx context.Context, postID, actorID int64, request models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, postID, actorID int64) error
}

type CommentService interface {
	CreateComment(ctx context.Context, authorID int64, request models.CreateCommentRequest) (models.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	UpdateComment(ctx context.Context, commentID, actorID int64, request models.UpdateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID, actorID int64) error
}

type LikeService interface {
	LikePost(ctx context.Context, postID, userID int64) (models.Like, error)
	GetLikesByPostID(ctx context.Context, postID int64) ([]models.Like, error)
	UnlikePost(ctx context.Context, postID, userID int64) error
}

type FollowService interface {
	FollowUser(ctx context.Context, followerID, followingID int64) (models.Follow, error)
	GetFollowers(ctx context.Context, userID int64) ([]models.Follow, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.Follow, error)
	UnfollowUser(ctx context.Context, followerID, followingID int64) error
}
