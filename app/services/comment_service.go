package services

import (
	"fmt"
	"strconv"

	"microblog/app/metrics"
	"microblog/app/models"
	"microblog/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates the input, verifies the referenced post exists and
// stores a new comment. The comment store is not touched on any failure.
func (s *CommentService) CreateComment(in *models.CommentIn) (*models.Comment, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	_, err := s.postRepo.GetByID(*in.PostID)
	metrics.StoreOperationsTotal.WithLabelValues("post", "get", strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		return nil, fmt.Errorf("post not found: %w", err)
	}

	comment := in.NewComment()
	err = s.commentRepo.Create(comment)
	metrics.StoreOperationsTotal.WithLabelValues("comment", "create", strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListPostComments retrieves all comments for a post in creation order.
// There is deliberately no existence check on the post id: an unknown post
// yields an empty list, not an error.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	metrics.StoreOperationsTotal.WithLabelValues("comment", "list", strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
