package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/models"
	"github.com/jackc/pgerrcode"
)

// followRepository is the PostgreSQL-backed implementation of
// [FollowRepository]. Follows have no surrogate id: every operation
// targets the composite key (follower_id, following_id), whose
// uniqueness is guaranteed by the table's primary key constraint.
type followRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFollowRepository constructs a [FollowRepository] backed by the
// provided database connection and logger.
func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	logger.Debug().Msg("creating follow repository")
	return &followRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFollow inserts a follow relationship and returns it with both
// user profiles attached.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateFollow].
//   - PostgreSQL foreign_key_violation (23503) → [ErrNoUserWasFound]:
//     the followed user does not exist.
func (r *followRepository) CreateFollow(ctx context.Context, followerID, followingID int64) (models.Follow, error) {
	log := logger.FromContext(ctx)

	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	row := r.db.QueryRowContext(ctx, createFollow, followerID, followingID)

	if err := row.Scan(&follow.CreatedAt); err != nil {
		log.Err(err).Str("func", "*followRepository.CreateFollow").Msg("error creating follow")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Follow{}, ErrDuplicateFollow
		case pgerrcode.ForeignKeyViolation:
			return models.Follow{}, ErrNoUserWasFound
		default:
			return models.Follow{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	follower, err := r.fetchProfile(ctx, followerID)
	if err != nil {
		return models.Follow{}, err
	}
	following, err := r.fetchProfile(ctx, followingID)
	if err != nil {
		return models.Follow{}, err
	}
	follow.Follower = &follower
	follow.Following = &following

	return follow, nil
}

// GetFollowers returns every follow relationship pointing at the given
// user, each with the follower's profile attached.
func (r *followRepository) GetFollowers(ctx context.Context, userID int64) ([]models.Follow, error) {
	query, args, err := selectFollowersQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return r.queryFollows(ctx, query, args, func(follow *models.Follow, profile *models.Author) {
		follow.Follower = profile
	})
}

// GetFollowing returns every follow relationship originating from the
// given user, each with the followed user's profile attached.
func (r *followRepository) GetFollowing(ctx context.Context, userID int64) ([]models.Follow, error) {
	query, args, err := selectFollowingQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return r.queryFollows(ctx, query, args, func(follow *models.Follow, profile *models.Author) {
		follow.Following = profile
	})
}

// DeleteFollow removes the follow relationship identified by the
// composite key in a single atomic statement. A delete that affects zero
// rows reports [ErrFollowNotFound] and leaves storage untouched.
func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followingID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFollow, followerID, followingID)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.DeleteFollow").Msg("error deleting follow")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrFollowNotFound
	}

	return nil
}

func (r *followRepository) queryFollows(ctx context.Context, query string, args []any, attach func(*models.Follow, *models.Author)) ([]models.Follow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.queryFollows").Msg("error querying follows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	follows := make([]models.Follow, 0)
	for rows.Next() {
		var follow models.Follow
		var profile models.Author

		if scanErr := rows.Scan(&follow.FollowerID, &follow.FollowingID, &follow.CreatedAt, &profile.ID, &profile.Name, &profile.Email, &profile.Avatar); scanErr != nil {
			log.Err(scanErr).Str("func", "*followRepository.queryFollows").Msg("error scanning follow row")
			return nil, scanErr
		}

		attach(&follow, &profile)
		follows = append(follows, follow)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return follows, nil
}

func (r *followRepository) fetchProfile(ctx context.Context, userID int64) (models.Author, error) {
	var profile models.Author
	row := r.db.QueryRowContext(ctx, findAuthorByID, userID)
	if err := row.Scan(&profile.ID, &profile.Name, &profile.Email, &profile.Avatar); err != nil {
		return models.Author{}, fmt.Errorf("error fetching follow profile: %w", err)
	}
	return profile, nil
}
