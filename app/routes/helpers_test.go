package routes

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"microblog/app/controllers"
	"microblog/app/repositories/memory"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

// setupTestRouter wires the full stack over fresh in-memory stores. Every
// call gets isolated state, no reset hooks needed.
func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	postRepo := memory.NewPostRepository()
	commentRepo := memory.NewCommentRepository()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	postController := controllers.NewPostController(postService, logger)
	commentController := controllers.NewCommentController(commentService, logger)

	return Setup(postController, commentController, logger, Options{Metrics: true})
}

// doRequest issues a request against the router and returns the recorder
func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
