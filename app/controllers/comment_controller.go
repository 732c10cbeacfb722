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

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	logger         *slog.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, logger *slog.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		logger:         logger,
	}
}

// Create handles POST /comments. Missing fields answer 422; an unknown
// post_id answers 404 before anything is stored.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CommentIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}

	comment, err := cc.commentService.CreateComment(&in)
	if err != nil {
		sendServiceError(w, r, cc.logger, err)
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}

// Index handles GET /posts/{post_id}/comments. An unknown post id yields an
// empty list, not a 404.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["post_id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "post not found")
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		sendServiceError(w, r, cc.logger, err)
		return
	}

	sendJSON(w, http.StatusOK, comments)
}
