package models

// Validate checks if the input meets all validation requirements
func (in *CommentIn) Validate() error {
	return validate.Struct(in)
}

// NewComment builds a Comment from the input fields. The id is assigned by
// the repository on creation.
func (in *CommentIn) NewComment() *Comment {
	return &Comment{
		PostID: *in.PostID,
		Body:   *in.Body,
	}
}

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	return validate.Struct(c)
}
