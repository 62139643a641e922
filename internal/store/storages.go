package store

import (
	"github.com/MKhiriev/go-social-hub/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// handle. One instance is created at startup and injected into the
// service layer.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
	LikeRepository    LikeRepository
	FollowRepository  FollowRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		PostRepository:    NewPostRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
		LikeRepository:    NewLikeRepository(db, logger),
		FollowRepository:  NewFollowRepository(db, logger),
	}
}
