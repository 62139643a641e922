package models

// Request bodies accepted by the HTTP API. Each creation shape has
// exactly one schema, declared once via `validate` struct tags and
// enforced by the validators package before any handler logic runs.
//
// Validation conventions:
//   - minimum lengths are inclusive lower bounds;
//   - "positive integer" fields reject zero and negatives (gt=0);
//   - email format is a syntactic check, not deliverability;
//   - optional fields are validated only when present (omitempty).

// RegisterRequest is the creation schema for a user account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2"`
	Bio      string `json:"bio,omitempty" validate:"omitempty"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// LoginRequest carries credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreatePostRequest is the creation schema for a post.
type CreatePostRequest struct {
	Title     string `json:"title" validate:"required,min=3"`
	Content   string `json:"content" validate:"required,min=10"`
	Published *bool  `json:"published,omitempty" validate:"omitempty"`
}

// UpdatePostRequest is the partial-update schema for a post. All fields
// are optional; constraints apply only to fields that are present.
type UpdatePostRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=3"`
	Content   *string `json:"content,omitempty" validate:"omitempty,min=10"`
	Published *bool   `json:"published,omitempty" validate:"omitempty"`
}

// CreateCommentRequest is the creation schema for a comment.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	PostID  int64  `json:"postId" validate:"gt=0"`
}

// UpdateCommentRequest is the partial-update schema for a comment.
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}
