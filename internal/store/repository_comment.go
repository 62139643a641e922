package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/models"
	"github.com/jackc/pgerrcode"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. Read paths join the users table so every comment
// carries the public profile of its author.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns it with
// server-assigned fields and the author profile attached.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrPostNotFound]:
//     the referenced post does not exist.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment, comment.PostID, comment.AuthorID, comment.Content)

	if err := row.Scan(&comment.CommentID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error creating comment")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Comment{}, ErrPostNotFound
		default:
			return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	author, err := r.fetchAuthor(ctx, comment.AuthorID)
	if err != nil {
		return models.Comment{}, err
	}
	comment.Author = &author

	return comment, nil
}

// GetCommentsByPostID returns every comment on the given post with its
// author profile, newest first.
func (r *commentRepository) GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCommentsByPostQuery(postID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetCommentsByPostID").Msg("error querying comments")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, scanErr := scanCommentWithAuthor(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.GetCommentsByPostID").Msg("error scanning comment row")
			return nil, scanErr
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comments, nil
}

// GetCommentByID returns the comment with the given id and its author
// profile.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrCommentNotFound].
func (r *commentRepository) GetCommentByID(ctx context.Context, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCommentByIDQuery(commentID).ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("error building sql query: %w", err)
	}

	comment, err := scanCommentWithAuthor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.GetCommentByID").Msg("error finding comment by id")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comment, nil
}

// UpdateComment applies a partial update to the comment with the given id
// and returns the updated row with the author profile attached.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrCommentNotFound].
func (r *commentRepository) UpdateComment(ctx context.Context, commentID int64, update models.UpdateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateCommentQuery(commentID, update).ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("error building sql query: %w", err)
	}

	var comment models.Comment
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&comment.CommentID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error updating comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	author, err := r.fetchAuthor(ctx, comment.AuthorID)
	if err != nil {
		return models.Comment{}, err
	}
	comment.Author = &author

	return comment, nil
}

// DeleteComment removes the comment with the given id. A delete that
// affects zero rows reports [ErrCommentNotFound].
func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error deleting comment")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func (r *commentRepository) fetchAuthor(ctx context.Context, authorID int64) (models.Author, error) {
	var author models.Author
	row := r.db.QueryRowContext(ctx, findAuthorByID, authorID)
	if err := row.Scan(&author.ID, &author.Name, &author.Email, &author.Avatar); err != nil {
		return models.Author{}, fmt.Errorf("error fetching comment author: %w", err)
	}
	return author, nil
}

func scanCommentWithAuthor(row rowScanner) (models.Comment, error) {
	var comment models.Comment
	var author models.Author

	err := row.Scan(
		&comment.CommentID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt,
		&author.ID, &author.Name, &author.Email, &author.Avatar,
	)
	if err != nil {
		return models.Comment{}, err
	}

	comment.Author = &author
	return comment, nil
}
