package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/models"
	"github.com/jackc/pgerrcode"
)

// likeRepository is the PostgreSQL-backed implementation of
// [LikeRepository]. Likes have no surrogate id: every operation targets
// the composite key (post_id, user_id), whose uniqueness is guaranteed by
// the table's primary key constraint even under concurrent creates.
type likeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLikeRepository constructs a [LikeRepository] backed by the provided
// database connection and logger.
func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLike inserts a like for the given (postID, userID) pair and
// returns it with the liking user's profile attached.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateLike]: the pair
//     already exists; exactly one row survives.
//   - PostgreSQL foreign_key_violation (23503) → [ErrPostNotFound]: the
//     referenced post does not exist.
func (r *likeRepository) CreateLike(ctx context.Context, postID, userID int64) (models.Like, error) {
	log := logger.FromContext(ctx)

	like := models.Like{PostID: postID, UserID: userID}
	row := r.db.QueryRowContext(ctx, createLike, postID, userID)

	if err := row.Scan(&like.CreatedAt); err != nil {
		log.Err(err).Str("func", "*likeRepository.CreateLike").Msg("error creating like")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Like{}, ErrDuplicateLike
		case pgerrcode.ForeignKeyViolation:
			return models.Like{}, ErrPostNotFound
		default:
			return models.Like{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	user, err := r.fetchUser(ctx, userID)
	if err != nil {
		return models.Like{}, err
	}
	like.User = &user

	return like, nil
}

// GetLikesByPostID returns every like on the given post with the liking
// user's profile.
func (r *likeRepository) GetLikesByPostID(ctx context.Context, postID int64) ([]models.Like, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectLikesByPostQuery(postID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.GetLikesByPostID").Msg("error querying likes")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	likes := make([]models.Like, 0)
	for rows.Next() {
		var like models.Like
		var user models.Author

		if scanErr := rows.Scan(&like.PostID, &like.UserID, &like.CreatedAt, &user.ID, &user.Name, &user.Email, &user.Avatar); scanErr != nil {
			log.Err(scanErr).Str("func", "*likeRepository.GetLikesByPostID").Msg("error scanning like row")
			return nil, scanErr
		}

		like.User = &user
		likes = append(likes, like)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return likes, nil
}

// DeleteLike removes the like identified by the composite key
// (postID, userID) in a single atomic statement. A delete that affects
// zero rows reports [ErrLikeNotFound]; repeating the delete has no
// further effect on storage and produces the same error class.
func (r *likeRepository) DeleteLike(ctx context.Context, postID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteLike, postID, userID)
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.DeleteLike").Msg("error deleting like")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrLikeNotFound
	}

	return nil
}

func (r *likeRepository) fetchUser(ctx context.Context, userID int64) (models.Author, error) {
	var user models.Author
	row := r.db.QueryRowContext(ctx, findAuthorByID, userID)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Avatar); err != nil {
		return models.Author{}, fmt.Errorf("error fetching liking user: %w", err)
	}
	return user, nil
}
