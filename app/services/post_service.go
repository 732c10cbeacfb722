package services

import (
	"fmt"
	"strconv"

	"microblog/app/metrics"
	"microblog/app/models"
	"microblog/app/repositories"
)

// PostService handles business logic for posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost validates the input and stores a new post. Nothing is stored
// when validation fails.
func (s *PostService) CreatePost(in *models.PostIn) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	post := in.NewPost()
	err := s.postRepo.Create(post)
	metrics.StoreOperationsTotal.WithLabelValues("post", "create", strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListPosts retrieves all posts in creation order
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	metrics.StoreOperationsTotal.WithLabelValues("post", "list", strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPostWithComments retrieves a post and its comments as a composite view.
// Pure read, no side effects.
func (s *PostService) GetPostWithComments(id int) (*models.PostWithComments, error) {
	post, err := s.postRepo.GetByID(id)
	metrics.StoreOperationsTotal.WithLabelValues("post", "get", strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		return nil, fmt.Errorf("post not found: %w", err)
	}

	comments, err := s.commentRepo.ListByPost(id)
	metrics.StoreOperationsTotal.WithLabelValues("comment", "list", strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return &models.PostWithComments{
		Post:     post,
		Comments: comments,
	}, nil
}
