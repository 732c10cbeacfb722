package routes

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"microblog/app/controllers"
	"microblog/app/repositories"
	"microblog/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// setupBadgerRouter wires the stack over an in-memory badger store
func setupBadgerRouter(t *testing.T) *mux.Router {
	t.Helper()

	db, err := repositories.OpenBadger("", true)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	postController := controllers.NewPostController(postService, logger)
	commentController := controllers.NewCommentController(commentService, logger)

	return Setup(postController, commentController, logger, Options{})
}

// The API behaves identically over the badger backend.
func TestAPIOverBadgerStore(t *testing.T) {
	router := setupBadgerRouter(t)

	w := doRequest(router, "POST", "/posts", `{"body":"hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":0,"body":"hello"}`, w.Body.String())

	w = doRequest(router, "POST", "/comments", `{"body":"nice","post_id":0}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":0,"post_id":0,"body":"nice"}`, w.Body.String())

	w = doRequest(router, "POST", "/comments", `{"body":"lost","post_id":42}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, "GET", "/posts/0", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"post": {"id":0,"body":"hello"},
		"comments": [{"id":0,"post_id":0,"body":"nice"}]
	}`, w.Body.String())
}
