package routes

import (
	"log/slog"
	"net/http"

	"microblog/app/controllers"
	"microblog/app/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options controls optional pieces of the router.
type Options struct {
	Metrics bool
}

// Setup builds the route table. All dependencies are injected; nothing here
// reaches for process-wide state, so tests can wire isolated stores.
func Setup(pc *controllers.PostController, cc *controllers.CommentController, logger *slog.Logger, opts Options) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.Instrument)
	router.Use(middleware.ContentTypeJSON)

	router.HandleFunc("/healthz", Health).Methods("GET")
	if opts.Metrics {
		router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	// Posts endpoints
	router.HandleFunc("/posts", pc.Index).Methods("GET")
	router.HandleFunc("/posts", pc.Create).Methods("POST")
	router.HandleFunc("/posts/{post_id:[0-9]+}", pc.Show).Methods("GET")

	// Comments endpoints
	router.HandleFunc("/comments", cc.Create).Methods("POST")
	router.HandleFunc("/posts/{post_id:[0-9]+}/comments", cc.Index).Methods("GET")

	return router
}

// Health answers liveness probes
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
