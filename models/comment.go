package models

import "time"

// Comment is a user-authored reply attached to a post. AuthorID
// references the owning user; only the owner may update or delete the
// comment.
type Comment struct {
	CommentID int64     `json:"id"`
	PostID    int64     `json:"postId"`
	AuthorID  int64     `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	// Author is the public profile of the owning user, populated on read
	// paths by joining against the users table.
	Author *Author `json:"author,omitempty"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
