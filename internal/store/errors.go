package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a query or mutation targets a post id
	// that does not exist in the database. Creating a comment or like
	// against a missing post also maps here (foreign key violation).
	ErrPostNotFound = errors.New("post was not found")

	// ErrCommentNotFound is returned when a query or mutation targets a
	// comment id that does not exist in the database.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrLikeNotFound is returned when a delete targets a
	// (post_id, user_id) like pair that does not exist. A repeated delete
	// of the same like lands here with no further side effect.
	ErrLikeNotFound = errors.New("like was not found")

	// ErrFollowNotFound is returned when a delete targets a
	// (follower_id, following_id) pair that does not exist.
	ErrFollowNotFound = errors.New("follow relationship was not found")

	// ErrDuplicateLike is returned when a second like is created for the
	// same (post_id, user_id) pair. The unique constraint guarantees
	// exactly one row survives even under concurrent creates.
	ErrDuplicateLike = errors.New("post is already liked")

	// ErrDuplicateFollow is returned when a second follow is created for
	// the same (follower_id, following_id) pair.
	ErrDuplicateFollow = errors.New("user is already followed")
)
