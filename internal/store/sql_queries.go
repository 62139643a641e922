package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-social-hub/models"
)

const (
	createUser = `INSERT INTO users (email, name, bio, avatar, password_hash)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, name, bio, avatar, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, name, bio, avatar, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, bio, avatar, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	findAuthorByID = `SELECT user_id, name, email, avatar
    FROM users
    WHERE user_id = $1;`

	createPost = `INSERT INTO posts (author_id, title, content, published)
    VALUES ($1, $2, $3, $4)
    RETURNING post_id, author_id, title, content, published, created_at, updated_at;`

	deletePost = `DELETE FROM posts
    WHERE post_id = $1;`

	createComment = `INSERT INTO comments (post_id, author_id, content)
    VALUES ($1, $2, $3)
    RETURNING comment_id, post_id, author_id, content, created_at;`

	deleteComment = `DELETE FROM comments
    WHERE comment_id = $1;`

	createLike = `INSERT INTO likes (post_id, user_id)
    VALUES ($1, $2)
    RETURNING created_at;`

	// compare-and-delete on the full composite key: atomic, no prior read
	deleteLike = `DELETE FROM likes
    WHERE post_id = $1 AND user_id = $2;`

	createFollow = `INSERT INTO follows (follower_id, following_id)
    VALUES ($1, $2)
    RETURNING created_at;`

	deleteFollow = `DELETE FROM follows
    WHERE follower_id = $1 AND following_id = $2;`
)

// psql is the shared squirrel statement builder configured for
// PostgreSQL-style $N placeholders. Used for every dynamically built
// query: joined list selects and partial updates.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postColumns is the joined column set scanned into a post with its
// author profile.
var postColumns = []string{
	"p.post_id", "p.author_id", "p.title", "p.content", "p.published",
	"p.created_at", "p.updated_at",
	"u.user_id", "u.name", "u.email", "u.avatar",
}

// selectPostsQuery builds the joined posts listing, newest first.
func selectPostsQuery() sq.SelectBuilder {
	return psql.Select(postColumns...).
		From("posts p").
		Join("users u ON u.user_id = p.author_id").
		OrderBy("p.created_at DESC")
}

// selectPostByIDQuery builds the single-post lookup with its author.
func selectPostByIDQuery(postID int64) sq.SelectBuilder {
	return psql.Select(postColumns...).
		From("posts p").
		Join("users u ON u.user_id = p.author_id").
		Where(sq.Eq{"p.post_id": postID})
}

// updatePostQuery builds a partial UPDATE touching only the fields
// present in update. The caller must ensure at least one field is set.
func updatePostQuery(postID int64, update models.UpdatePostRequest) sq.UpdateBuilder {
	builder := psql.Update("posts").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Published != nil {
		builder = builder.Set("published", *update.Published)
	}

	return builder.
		Where(sq.Eq{"post_id": postID}).
		Suffix("RETURNING post_id, author_id, title, content, published, created_at, updated_at")
}

// commentColumns is the joined column set scanned into a comment with
// its author profile.
var commentColumns = []string{
	"c.comment_id", "c.post_id", "c.author_id", "c.content", "c.created_at",
	"u.user_id", "u.name", "u.email", "u.avatar",
}

func selectCommentsByPostQuery(postID int64) sq.SelectBuilder {
	return psql.Select(commentColumns...).
		From("comments c").
		Join("users u ON u.user_id = c.author_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.created_at DESC")
}

func selectCommentByIDQuery(commentID int64) sq.SelectBuilder {
	return psql.Select(commentColumns...).
		From("comments c").
		Join("users u ON u.user_id = c.author_id").
		Where(sq.Eq{"c.comment_id": commentID})
}

// updateCommentQuery builds a partial UPDATE for a comment. The caller
// must ensure at least one field is set: squirrel rejects an UPDATE with
// an empty SET list.
func updateCommentQuery(commentID int64, update models.UpdateCommentRequest) sq.UpdateBuilder {
	builder := psql.Update("comments")

	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return builder.
		Where(sq.Eq{"comment_id": commentID}).
		Suffix("RETURNING comment_id, post_id, author_id, content, created_at")
}

func selectLikesByPostQuery(postID int64) sq.SelectBuilder {
	return psql.Select(
		"l.post_id", "l.user_id", "l.created_at",
		"u.user_id", "u.name", "u.email", "u.avatar",
	).
		From("likes l").
		Join("users u ON u.user_id = l.user_id").
		Where(sq.Eq{"l.post_id": postID})
}

func selectFollowersQuery(userID int64) sq.SelectBuilder {
	return psql.Select(
		"f.follower_id", "f.following_id", "f.created_at",
		"u.user_id", "u.name", "u.email", "u.avatar",
	).
		From("follows f").
		Join("users u ON u.user_id = f.follower_id").
		Where(sq.Eq{"f.following_id": userID})
}

func selectFollowingQuery(userID int64) sq.SelectBuilder {
	return psql.Select(
		"f.follower_id", "f.following_id", "f.created_at",
		"u.user_id", "u.name", "u.email", "u.avatar",
	).
		From("follows f").
		Join("users u ON u.user_id = f.following_id").
		Where(sq.Eq{"f.follower_id": userID})
}
