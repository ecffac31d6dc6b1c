package dto

import "time"

type CreatePostRequest struct {
	Title     string  `json:"title" binding:"required"`
	Slug      string  `json:"slug" binding:"required"`
	Content   string  `json:"content" binding:"required"`
	Excerpt   *string `json:"excerpt"`
	Published bool    `json:"published"`
}

// UpdatePostRequest is a partial update: omitted fields keep their stored
// values.
type UpdatePostRequest struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Published *bool   `json:"published"`
}

type PostResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostListResponse struct {
	Items []PostResponse `json:"items"`
}
