package model

// Follower is a directed edge: the follower is subscribed to the following
// user's activity. The pair is the primary key; there are no other attributes.
type Follower struct {
	FollowerID  string `db:"follower_id" json:"followerId"`
	FollowingID string `db:"following_id" json:"followingId"`
}
