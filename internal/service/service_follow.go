package service

import (
	"context"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/models"
)

// followService is the concrete implementation of FollowService. Follows are
// keyed by (followerID, followingID) where followerID always comes from the
// verified token, so a user can only ever manage their own follow edges.
type followService struct {
	followRepository store.FollowRepository
	logger           *logger.Logger
}

func NewFollowService(followRepository store.FollowRepository, logger *logger.Logger) FollowService {
	return &followService{
		followRepository: followRepository,
		logger:           logger,
	}
}

// FollowUser records that followerID started following followingID.
//
// Returns:
//   - ErrSelfFollow if both ids are the same; nothing is written.
//   - [store.ErrDuplicateFollow] if the relationship already exists.
//   - [store.ErrNoUserWasFound] if the followed user does not exist.
func (f *followService) FollowUser(ctx context.Context, followerID, followingID int64) (models.Follow, error) {
	log := logger.FromContext(ctx)

	if followerID == followingID {
		log.Warn().Int64("userID", followerID).Msg("self-follow rejected")
		return models.Follow{}, ErrSelfFollow
	}

	follow, err := f.followRepository.CreateFollow(ctx, followerID, followingID)
	if err != nil {
		log.Err(err).Int64("followerID", followerID).Int64("followingID", followingID).Msg("follow creation ended with error")
		return models.Follow{}, err
	}

	return follow, nil
}

// GetFollowers returns every user following userID.
func (f *followService) GetFollowers(ctx context.Context, userID int64) ([]models.Follow, error) {
	return f.followRepository.GetFollowers(ctx, userID)
}

// GetFollowing returns every user that userID follows.
func (f *followService) GetFollowing(ctx context.Context, userID int64) ([]models.Follow, error) {
	return f.followRepository.GetFollowing(ctx, userID)
}

// UnfollowUser removes the follow edge from followerID to followingID.
// Returns [store.ErrFollowNotFound] when no such relationship exists.
func (f *followService) UnfollowUser(ctx context.Context, followerID, followingID int64) error {
	return f.followRepository.DeleteFollow(ctx, followerID, followingID)
}
