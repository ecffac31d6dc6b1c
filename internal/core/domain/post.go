package domain

import "time"

type Post struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Slug      string    `db:"slug"`
	Content   string    `db:"content"` // markdown
	Excerpt   *string   `db:"excerpt"`
	Published bool      `db:"published"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CreatePost carries the caller-supplied fields for a new post. Timestamps and
// the id are always set server-side.
type CreatePost struct {
	Title     string
	Slug      string
	Content   string
	Excerpt   *string
	Published bool
}

func NewPost(cp CreatePost) *Post {
	now := time.Now().UTC()
	return &Post{
		Title:     cp.Title,
		Slug:      cp.Slug,
		Content:   cp.Content,
		Excerpt:   cp.Excerpt,
		Published: cp.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PostPatch is a partial update: a nil field retains the current value, a
// non-nil field overrides it.
type PostPatch struct {
	Title     *string
	Slug      *string
	Content   *string
	Excerpt   *string
	Published *bool
}

// Apply merges the patch into post. UpdatedAt is left alone here; the
// repository refreshes it when the merged record is written.
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Slug != nil {
		post.Slug = *p.Slug
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Excerpt != nil {
		post.Excerpt = p.Excerpt
	}
	if p.Published != nil {
		post.Published = *p.Published
	}
}
