package models

import "time"

// Like marks that a user liked a post. Likes are identified by the
// composite key (PostID, UserID) rather than a surrogate id: the pair is
// unique, and because UserID always comes from the verified token, the
// key itself carries ownership.
type Like struct {
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	// User is the public profile of the liking user, populated on read
	// paths by joining against the users table.
	User *Author `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}
