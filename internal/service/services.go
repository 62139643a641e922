package service

import (
	"github.com/MKhiriev/go-social-hub/internal/config"
	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	CommentService CommentService
	LikeService    LikeService
	FollowService  FollowService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		PostService:    NewPostService(storages.PostRepository, logger),
		CommentService: NewCommentService(storages.CommentRepository, logger),
		LikeService:    NewLikeService(storages.LikeRepository, logger),
		FollowService:  NewFollowService(storages.FollowRepository, logger),
	}
}
