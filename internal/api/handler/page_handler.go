package handler

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redleaf-cms/redleaf/internal/core/domain"
	"github.com/redleaf-cms/redleaf/internal/core/service"
	"github.com/redleaf-cms/redleaf/internal/markdown"
)

// PageHandler serves the public server-rendered HTML pages.
type PageHandler struct {
	postService *service.PostService
}

func NewPageHandler(postService *service.PostService) *PageHandler {
	return &PageHandler{postService: postService}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, homeTmpl, nil)
}

// ListPosts handles GET /posts
func (h *PageHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPublished(c.Request.Context())
	if err != nil {
		log.Printf("failed to fetch posts: %v", err)
		h.render(c, http.StatusInternalServerError, errorTmpl, nil)
		return
	}

	items := make([]postListItem, len(posts))
	for i, post := range posts {
		items[i] = postListItem{
			ID:      post.ID,
			Title:   post.Title,
			Date:    post.CreatedAt.Format("January 2, 2006"),
			Excerpt: excerptOf(post),
		}
	}

	h.render(c, http.StatusOK, listTmpl, listPage{Posts: items})
}

// ShowPost handles GET /posts/:id
func (h *PageHandler) ShowPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.render(c, http.StatusNotFound, notFoundTmpl, nil)
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to fetch post %d: %v", id, err)
		h.render(c, http.StatusInternalServerError, errorTmpl, nil)
		return
	}
	if post == nil {
		h.render(c, http.StatusNotFound, notFoundTmpl, nil)
		return
	}

	content, err := markdown.ToHTML(post.Content)
	if err != nil {
		log.Printf("failed to render post %d: %v", id, err)
		h.render(c, http.StatusInternalServerError, errorTmpl, nil)
		return
	}

	h.render(c, http.StatusOK, detailTmpl, detailPage{
		Title:   post.Title,
		Date:    post.CreatedAt.Format("January 2, 2006"),
		Content: template.HTML(content),
	})
}

// Admin handles GET /admin — the static dashboard shell.
func (h *PageHandler) Admin(c *gin.Context) {
	h.render(c, http.StatusOK, adminTmpl, nil)
}

func (h *PageHandler) render(c *gin.Context, code int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("failed to execute template %s: %v", tmpl.Name(), err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.Data(code, "text/html; charset=utf-8", buf.Bytes())
}

// excerptOf prefers the stored excerpt and falls back to the first 200 runes
// of content.
func excerptOf(post *domain.Post) string {
	if post.Excerpt != nil && *post.Excerpt != "" {
		return *post.Excerpt
	}
	runes := []rune(post.Content)
	if len(runes) > 200 {
		return string(runes[:200]) + "…"
	}
	return post.Content
}

type postListItem struct {
	ID      int64
	Title   string
	Date    string
	Excerpt string
}

type listPage struct {
	Posts []postListItem
}

type detailPage struct {
	Title   string
	Date    string
	Content template.HTML
}
