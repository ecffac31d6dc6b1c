package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redleaf-cms/redleaf/internal/api/handler"
	"github.com/redleaf-cms/redleaf/internal/api/middleware"
	"github.com/redleaf-cms/redleaf/internal/core/service"
	"github.com/redleaf-cms/redleaf/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates the HTTP server with all routes wired.
func NewServer(
	cfg *config.Config,
	postService *service.PostService,
	userService *service.UserService,
) *Server {
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	pageHandler := handler.NewPageHandler(postService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)

	// Public HTML pages
	router.GET("/", pageHandler.Home)
	router.GET("/posts", pageHandler.ListPosts)
	router.GET("/posts/:id", pageHandler.ShowPost)
	router.GET("/admin", pageHandler.Admin)
	router.Static("/static", cfg.StaticDir)

	// Admin JSON API
	api := router.Group("/api")
	{
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.POST("/posts", postHandler.CreatePost)
		api.PUT("/posts/:id", postHandler.UpdatePost)
		api.DELETE("/posts/:id", postHandler.DeletePost)

		api.POST("/users", userHandler.Register)
		api.POST("/login", userHandler.Login)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	fmt.Printf("🌿 RedLeaf CMS listening on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
