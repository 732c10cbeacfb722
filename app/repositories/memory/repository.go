// Package memory provides map-backed repositories. This is the default store
// backend: process-lifetime state, no persistence.
package memory

import (
	"sync"

	"microblog/app/models"
	"microblog/app/repositories"
)

// PostRepository implements repositories.PostRepository with a plain map.
// Ids come from a monotonic counter starting at 0, independent of store size.
type PostRepository struct {
	mutex  sync.RWMutex
	posts  map[int]*models.Post
	nextID int
}

// CommentRepository implements repositories.CommentRepository with a plain map.
type CommentRepository struct {
	mutex    sync.RWMutex
	comments map[int]*models.Comment
	nextID   int
}

// NewPostRepository creates an empty in-memory post store
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[int]*models.Post),
	}
}

// NewCommentRepository creates an empty in-memory comment store
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[int]*models.Comment),
	}
}

// Create assigns the next id and stores the post
func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

// GetByID retrieves a post by ID
func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

// List retrieves all posts in creation order
func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for id := 0; id < m.nextID; id++ {
		if post, exists := m.posts[id]; exists {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// Clear empties the store. Tests use this for isolation.
func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = make(map[int]*models.Post)
	m.nextID = 0
}

// Create assigns the next id and stores the comment
func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

// GetByID retrieves a comment by ID
func (m *CommentRepository) GetByID(id int) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

// ListByPost retrieves all comments for a post in creation order
func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := make([]*models.Comment, 0)
	for id := 0; id < m.nextID; id++ {
		if comment, exists := m.comments[id]; exists && comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// Clear empties the store. Tests use this for isolation.
func (m *CommentRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.comments = make(map[int]*models.Comment)
	m.nextID = 0
}
