package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-social-hub/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID int64) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, update models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	GetCommentByID(ctx context.Context, commentID int64) (models.Comment, error)
	UpdateComment(ctx context.Context, commentID int64, update models.UpdateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type LikeRepository interface {
	CreateLike(ctx context.Context, postID, userID int64) (models.Like, error)
	GetLikesByPostID(ctx context.Context, postID int64) ([]models.Like, error)
	DeleteLike(ctx context.Context, postID, userID int64) error
}

type FollowRepository interface {
	CreateFollow(ctx context.Context, followerID, followingID int64) (models.Follow, error)
	GetFollowers(ctx context.Context, userID int64) ([]models.Follow, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.Follow, error)
	DeleteFollow(ctx context.Context, followerID, followingID int64) error
}
