package service

import (
	"context"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/models"
)

// likeService is the concrete implementation of LikeService. Likes are keyed
// by (postID, userID) where userID always comes from the verified token, so
// a user can only ever create or remove their own likes; no separate
// ownership check is needed.
type likeService struct {
	likeRepository store.LikeRepository
	logger         *logger.Logger
}

func NewLikeService(likeRepository store.LikeRepository, logger *logger.Logger) LikeService {
	return &likeService{
		likeRepository: likeRepository,
		logger:         logger,
	}
}

// LikePost records that userID liked the given post.
//
// Returns:
//   - [store.ErrDuplicateLike] if the like already exists.
//   - [store.ErrPostNotFound] if the post does not exist.
func (l *likeService) LikePost(ctx context.Context, postID, userID int64) (models.Like, error) {
	log := logger.FromContext(ctx)

	like, err := l.likeRepository.CreateLike(ctx, postID, userID)
	if err != nil {
		log.Err(err).Int64("postID", postID).Int64("userID", userID).Msg("like creation ended with error")
		return models.Like{}, err
	}

	return like, nil
}

// GetLikesByPostID returns every like on the given post.
func (l *likeService) GetLikesByPostID(ctx context.Context, postID int64) ([]models.Like, error) {
	return l.likeRepository.GetLikesByPostID(ctx, postID)
}

// UnlikePost removes userID's like from the given post. Returns
// [store.ErrLikeNotFound] when no such like exists, including on a repeated
// unlike.
func (l *likeService) UnlikePost(ctx context.Context, postID, userID int64) error {
	return l.likeRepository.DeleteLike(ctx, postID, userID)
}
