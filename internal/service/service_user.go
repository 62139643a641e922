package service

import (
	"context"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/models"
)

// userService exposes read access to user profiles.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUserByID returns the user with the given id.
//
// Returns [store.ErrNoUserWasFound] when no such user exists. The caller is
// expected to strip private fields before rendering; see
// [models.User.PublicProfile].
func (u *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return models.User{}, err
	}

	return user, nil
}
