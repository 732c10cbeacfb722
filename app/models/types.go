package models

// PostIn is the payload accepted when creating a post. Body is a pointer so
// an absent field fails validation while a present empty string does not.
type PostIn struct {
	Body *string `json:"body" validate:"required"`
}

// Post is a stored post.
type Post struct {
	ID   int    `json:"id" validate:"gte=0"`
	Body string `json:"body"`
}

// CommentIn is the payload accepted when creating a comment. PostID is a
// pointer because 0 is a valid post id.
type CommentIn struct {
	Body   *string `json:"body" validate:"required"`
	PostID *int    `json:"post_id" validate:"required"`
}

// Comment is a stored comment attached to a post.
type Comment struct {
	ID     int    `json:"id" validate:"gte=0"`
	PostID int    `json:"post_id" validate:"gte=0"`
	Body   string `json:"body"`
}

// PostWithComments is the composite read view of a post and its comments.
// It is assembled on demand, never stored.
type PostWithComments struct {
	Post     *Post      `json:"post"`
	Comments []*Comment `json:"comments"`
}
