package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentInValidate(t *testing.T) {
	body := "nice"
	postID := 0

	t.Run("valid input", func(t *testing.T) {
		in := &CommentIn{Body: &body, PostID: &postID}
		assert.NoError(t, in.Validate())
	})

	t.Run("post id 0 is valid", func(t *testing.T) {
		zero := 0
		in := &CommentIn{Body: &body, PostID: &zero}
		assert.NoError(t, in.Validate())
	})

	t.Run("missing body fails", func(t *testing.T) {
		in := &CommentIn{PostID: &postID}
		assert.Error(t, in.Validate())
	})

	t.Run("missing post id fails", func(t *testing.T) {
		in := &CommentIn{Body: &body}
		assert.Error(t, in.Validate())
	})
}

func TestCommentInNewComment(t *testing.T) {
	body := "nice"
	postID := 3
	in := &CommentIn{Body: &body, PostID: &postID}

	comment := in.NewComment()
	assert.Equal(t, "nice", comment.Body)
	assert.Equal(t, 3, comment.PostID)
	assert.Equal(t, 0, comment.ID)
}

func TestCommentValidate(t *testing.T) {
	comment := &Comment{ID: 0, PostID: 0, Body: "nice"}
	assert.NoError(t, comment.Validate())

	comment = &Comment{ID: 0, PostID: -2, Body: "nice"}
	assert.Error(t, comment.Validate())
}
