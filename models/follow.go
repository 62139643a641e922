package models

import "time"

// Follow records that one user follows another. Follows are identified
// by the composite key (FollowerID, FollowingID); FollowerID always
// comes from the verified token, so the key itself carries ownership.
type Follow struct {
	FollowerID  int64     `json:"followerId"`
	FollowingID int64     `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`

	// Follower and Following are the public profiles of both sides of
	// the relationship, populated on read paths.
	Follower  *Author `json:"follower,omitempty"`
	Following *Author `json:"following,omitempty"`
}

// TableName returns the name of the database table
// associated with the Follow model.
func (f Follow) TableName() string {
	return "follows"
}
