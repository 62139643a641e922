package models

import "time"

// Post is a user-authored publication. AuthorID references the owning
// user; only the owner may update or delete the post.
type Post struct {
	PostID    int64     `json:"id"`
	AuthorID  int64     `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Author is the public profile of the owning user, populated on read
	// paths by joining against the users table.
	Author *Author `json:"author,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
