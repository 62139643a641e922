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

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
//
// Read paths join the users table so that every returned post carries the
// public profile of its author; write paths fetch the author profile after
// the mutation so the caller receives the same shape everywhere.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns it with server-assigned
// fields (PostID, CreatedAt, UpdatedAt) and the author profile attached.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPost, post.AuthorID, post.Title, post.Content, post.Published)

	if err := row.Scan(&post.PostID, &post.AuthorID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error creating post")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Post{}, ErrNoUserWasFound
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	author, err := r.fetchAuthor(ctx, post.AuthorID)
	if err != nil {
		return models.Post{}, err
	}
	post.Author = &author

	return post, nil
}

// GetAllPosts returns every post with its author profile, newest first.
func (r *postRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPostsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetAllPosts").Msg("error querying posts")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, scanErr := scanPostWithAuthor(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.GetAllPosts").Msg("error scanning post row")
			return nil, scanErr
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return posts, nil
}

// GetPostByID returns the post with the given id and its author profile.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrPostNotFound].
func (r *postRepository) GetPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPostByIDQuery(postID).ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("error building sql query: %w", err)
	}

	post, err := scanPostWithAuthor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPostByID").Msg("error finding post by id")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// UpdatePost applies a partial update to the post with the given id and
// returns the updated row with the author profile attached. Only fields
// present in update are touched; updated_at is always refreshed.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrPostNotFound].
func (r *postRepository) UpdatePost(ctx context.Context, postID int64, update models.UpdatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := updatePostQuery(postID, update).ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("error building sql query: %w", err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.PostID, &post.AuthorID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	author, err := r.fetchAuthor(ctx, post.AuthorID)
	if err != nil {
		return models.Post{}, err
	}
	post.Author = &author

	return post, nil
}

// DeletePost removes the post with the given id. A delete that affects
// zero rows reports [ErrPostNotFound], which makes repeated deletes of
// the same id indistinguishable from deleting a post that never existed.
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *postRepository) fetchAuthor(ctx context.Context, authorID int64) (models.Author, error) {
	var author models.Author
	row := r.db.QueryRowContext(ctx, findAuthorByID, authorID)
	if err := row.Scan(&author.ID, &author.Name, &author.Email, &author.Avatar); err != nil {
		return models.Author{}, fmt.Errorf("error fetching post author: %w", err)
	}
	return author, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostWithAuthor(row rowScanner) (models.Post, error) {
	var post models.Post
	var author models.Author

	err := row.Scan(
		&post.PostID, &post.AuthorID, &post.Title, &post.Content, &post.Published,
		&post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Name, &author.Email, &author.Avatar,
	)
	if err != nil {
		return models.Post{}, err
	}

	post.Author = &author
	return post, nil
}
