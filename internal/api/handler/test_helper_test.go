package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redleaf-cms/redleaf/internal/api/dto"
	"github.com/redleaf-cms/redleaf/internal/core/service"
	"github.com/redleaf-cms/redleaf/internal/infrastructure/sqlite"
)

// testEnv holds all test dependencies
type testEnv struct {
	db          *sqlite.DB
	router      *gin.Engine
	postService *service.PostService
	userService *service.UserService
}

// setupTestEnv creates a test environment with an in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	postService := service.NewPostService(sqlite.NewPostRepository(db))
	userService := service.NewUserService(sqlite.NewUserRepository(db))

	pageHandler := NewPageHandler(postService)
	postHandler := NewPostHandler(postService)
	userHandler := NewUserHandler(userService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/", pageHandler.Home)
	router.GET("/posts", pageHandler.ListPosts)
	router.GET("/posts/:id", pageHandler.ShowPost)
	router.GET("/admin", pageHandler.Admin)

	router.GET("/api/posts", postHandler.ListPosts)
	router.GET("/api/posts/:id", postHandler.GetPost)
	router.POST("/api/posts", postHandler.CreatePost)
	router.PUT("/api/posts/:id", postHandler.UpdatePost)
	router.DELETE("/api/posts/:id", postHandler.DeletePost)

	router.POST("/api/users", userHandler.Register)
	router.POST("/api/login", userHandler.Login)

	return &testEnv{
		db:          db,
		router:      router,
		postService: postService,
		userService: userService,
	}
}

// doRequest performs a request, JSON-encoding body when it is non-nil.
func (env *testEnv) doRequest(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func parsePostResponse(t *testing.T, w *httptest.ResponseRecorder) dto.PostResponse {
	t.Helper()

	var resp dto.PostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parsePostListResponse(t *testing.T, w *httptest.ResponseRecorder) dto.PostListResponse {
	t.Helper()

	var resp dto.PostListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseUserResponse(t *testing.T, w *httptest.ResponseRecorder) dto.UserResponse {
	t.Helper()

	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// ptr is a helper to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}
