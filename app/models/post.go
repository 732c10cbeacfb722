package models

// Validate checks if the input meets all validation requirements
func (in *PostIn) Validate() error {
	return validate.Struct(in)
}

// NewPost builds a Post from the input fields. The id is assigned by the
// repository on creation.
func (in *PostIn) NewPost() *Post {
	return &Post{Body: *in.Body}
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}
