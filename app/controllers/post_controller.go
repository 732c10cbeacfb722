package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"microblog/app/models"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
	logger      *slog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, logger *slog.Logger) *PostController {
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

// Index handles GET /posts, listing all posts in creation order
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}

	sendJSON(w, http.StatusOK, posts)
}

// Create handles POST /posts. A missing or wrong-typed body field is a
// schema failure and answers 422.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PostIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(&in)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Show handles GET /posts/{post_id}, returning the post together with its
// comments, or 404 when the post is unknown.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["post_id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "post not found")
		return
	}

	view, err := pc.postService.GetPostWithComments(id)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}

	sendJSON(w, http.StatusOK, view)
}
