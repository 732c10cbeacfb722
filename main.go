package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"microblog/app/controllers"
	"microblog/app/repositories"
	"microblog/app/repositories/memory"
	"microblog/app/routes"
	"microblog/app/services"
	"microblog/config"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("microblog version %s\n", cliVersion)
	case "serve":
		serve()
	case "init":
		initDB()
	case "clean":
		clean()
	case "backup":
		backup(os.Args[2:])
	case "restore":
		if len(os.Args) < 3 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: microblog <command> [options]
Commands:
  help               Display this help message.
  version            Show version information.
  serve              Run the HTTP API.
  init               Initialize the badger store directory.
  clean              Delete the badger store directory.
  backup [file]      Write a badger backup (default: data/backups/backup_<ts>.db).
  restore <file>     Load a badger backup into the store directory.
`
	fmt.Println(helpText)
}

// newLogger builds the process logger from config
func newLogger(cfg config.Log) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

// serve wires the configured store backend into the service stack and runs
// the HTTP server until interrupted.
func serve() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.Log)

	var postRepo repositories.PostRepository
	var commentRepo repositories.CommentRepository

	switch cfg.Store.Backend {
	case config.BackendBadger:
		db, err := repositories.OpenBadger(cfg.Store.Path, cfg.Store.InMemory)
		if err != nil {
			logger.Error("failed to open badger store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		postRepo = repositories.NewBadgerPostRepository(db)
		commentRepo = repositories.NewBadgerCommentRepository(db)
	default:
		postRepo = memory.NewPostRepository()
		commentRepo = memory.NewCommentRepository()
	}

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	postController := controllers.NewPostController(postService, logger)
	commentController := controllers.NewCommentController(commentService, logger)

	router := routes.Setup(postController, commentController, logger, routes.Options{
		Metrics: cfg.Metrics.Enabled,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting microblog API",
			slog.String("address", cfg.Server.Address),
			slog.String("store", cfg.Store.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}

// storePath resolves the configured badger directory for the db commands
func storePath() string {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg.Store.Path
}

// initDB initializes a new empty store
func initDB() {
	dbPath := storePath()
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Store already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create store directory: %v\n", err)
		os.Exit(1)
	}

	db, err := repositories.OpenBadger(dbPath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("Store initialized successfully")
}

// clean removes the store directory
func clean() {
	dbPath := storePath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Store is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the store? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to clean store: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Store cleaned successfully")
}

// backup writes a badger backup of the store
func backup(args []string) {
	dbPath := storePath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No store exists to backup")
		return
	}

	var backupFile string
	if len(args) > 0 {
		backupFile = args[0]
	} else {
		backupDir := "data/backups"
		if err := os.MkdirAll(backupDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create backup directory: %v\n", err)
			os.Exit(1)
		}
		backupFile = filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	}

	db, err := repositories.OpenBadger(dbPath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create backup file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to backup store: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Store backed up successfully to %s\n", backupFile)
}

// restore loads a badger backup into the store directory
func restore(backupFile string) {
	dbPath := storePath()
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Print("Existing store found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(dbPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remove existing store: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create store directory: %v\n", err)
		os.Exit(1)
	}

	db, err := repositories.OpenBadger(dbPath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open backup file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore store: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Store restored successfully")
}
