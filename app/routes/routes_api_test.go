package routes

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	t.Run("valid body returns 201 with assigned id", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "POST", "/posts", `{"body":"hello"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.JSONEq(t, `{"id":0,"body":"hello"}`, w.Body.String())
	})

	t.Run("missing body returns 422 and stores nothing", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "POST", "/posts", `{}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = doRequest(router, "GET", "/posts", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("wrong-typed body returns 422", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "POST", "/posts", `{"body":123}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("ids increase monotonically", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "POST", "/posts", `{"body":"one"}`)
		require.JSONEq(t, `{"id":0,"body":"one"}`, w.Body.String())

		w = doRequest(router, "POST", "/posts", `{"body":"two"}`)
		require.JSONEq(t, `{"id":1,"body":"two"}`, w.Body.String())
	})
}

func TestListPosts(t *testing.T) {
	t.Run("empty store lists as empty array", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "GET", "/posts", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("single created post is listed", func(t *testing.T) {
		router := setupTestRouter(t)
		doRequest(router, "POST", "/posts", `{"body":"hello"}`)

		w := doRequest(router, "GET", "/posts", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[{"id":0,"body":"hello"}]`, w.Body.String())
	})
}

func TestCreateComment(t *testing.T) {
	t.Run("existing post returns 201 with assigned id", func(t *testing.T) {
		router := setupTestRouter(t)
		doRequest(router, "POST", "/posts", `{"body":"hello"}`)

		w := doRequest(router, "POST", "/comments", `{"body":"nice","post_id":0}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.JSONEq(t, `{"id":0,"post_id":0,"body":"nice"}`, w.Body.String())
	})

	t.Run("unknown post returns 404 and stores nothing", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "POST", "/comments", `{"body":"lost","post_id":42}`)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), "post not found")

		w = doRequest(router, "GET", "/posts/42/comments", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("missing fields return 422", func(t *testing.T) {
		router := setupTestRouter(t)
		doRequest(router, "POST", "/posts", `{"body":"hello"}`)

		w := doRequest(router, "POST", "/comments", `{"body":"no post id"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = doRequest(router, "POST", "/comments", `{"post_id":0}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestListComments(t *testing.T) {
	t.Run("only matching comments in creation order", func(t *testing.T) {
		router := setupTestRouter(t)
		doRequest(router, "POST", "/posts", `{"body":"hello"}`)
		doRequest(router, "POST", "/posts", `{"body":"other"}`)
		doRequest(router, "POST", "/comments", `{"body":"first","post_id":0}`)
		doRequest(router, "POST", "/comments", `{"body":"elsewhere","post_id":1}`)
		doRequest(router, "POST", "/comments", `{"body":"second","post_id":0}`)

		w := doRequest(router, "GET", "/posts/0/comments", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[
			{"id":0,"post_id":0,"body":"first"},
			{"id":2,"post_id":0,"body":"second"}
		]`, w.Body.String())
	})

	t.Run("unknown post yields empty list not 404", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "GET", "/posts/42/comments", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestGetPostWithComments(t *testing.T) {
	t.Run("composite of post and its comments", func(t *testing.T) {
		router := setupTestRouter(t)
		doRequest(router, "POST", "/posts", `{"body":"hello"}`)
		doRequest(router, "POST", "/comments", `{"body":"nice","post_id":0}`)

		w := doRequest(router, "GET", "/posts/0", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{
			"post": {"id":0,"body":"hello"},
			"comments": [{"id":0,"post_id":0,"body":"nice"}]
		}`, w.Body.String())
	})

	t.Run("post without comments has empty comments array", func(t *testing.T) {
		router := setupTestRouter(t)
		doRequest(router, "POST", "/posts", `{"body":"hello"}`)

		w := doRequest(router, "GET", "/posts/0", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"post":{"id":0,"body":"hello"},"comments":[]}`, w.Body.String())
	})

	t.Run("unknown post returns 404", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "GET", "/posts/42", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), "post not found")
	})

	t.Run("non-numeric id never matches a route", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(router, "GET", "/posts/abc", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOperationalEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("healthz", func(t *testing.T) {
		w := doRequest(router, "GET", "/healthz", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("metrics exposition", func(t *testing.T) {
		doRequest(router, "GET", "/posts", "")

		w := doRequest(router, "GET", "/metrics", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, strings.Contains(w.Body.String(), "microblog_http_requests_total"))
	})

	t.Run("request id header is set", func(t *testing.T) {
		w := doRequest(router, "GET", "/posts", "")
		require.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
