package dto

import (
	"slices"
	"time"

	"github.com/jhoicas/blog-api/internal/domain/validation"
)

// EditorPostRequest entrada para crear o actualizar un post.
type EditorPostRequest struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Body       string `json:"body"`
	Slug       string `json:"slug"`
	CategoryID int    `json:"category_id"`
	AuthorID   int    `json:"author_id"`
}

// UpdatePostConstraints reglas de EditorPostRequest al actualizar. El autor no cambia
// después de crear el post, así que author_id no se valida.
var UpdatePostConstraints = []validation.Constraint[EditorPostRequest]{
	{Field: "title", Kind: validation.Required, Value: func(in EditorPostRequest) any { return in.Title }},
	{Field: "title", Kind: validation.Length, Min: 3, Max: 160, Value: func(in EditorPostRequest) any { return in.Title }},
	{Field: "summary", Kind: validation.Required, Value: func(in EditorPostRequest) any { return in.Summary }},
	{Field: "summary", Kind: validation.Length, Min: 1, Max: 255, Value: func(in EditorPostRequest) any { return in.Summary }},
	{Field: "body", Kind: validation.Required, Value: func(in EditorPostRequest) any { return in.Body }},
	{Field: "slug", Kind: validation.Required, Value: func(in EditorPostRequest) any { return in.Slug }},
	{Field: "slug", Kind: validation.Length, Min: 1, Max: 80, Value: func(in EditorPostRequest) any { return in.Slug }},
	{Field: "category_id", Kind: validation.Positive, Value: func(in EditorPostRequest) any { return in.CategoryID }},
}

// CreatePostConstraints reglas de EditorPostRequest al crear.
var CreatePostConstraints = append(slices.Clone(UpdatePostConstraints),
	validation.Constraint[EditorPostRequest]{Field: "author_id", Kind: validation.Positive, Value: func(in EditorPostRequest) any { return in.AuthorID }},
)

// PostResponse salida de un post.
type PostResponse struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	Body           string    `json:"body"`
	Slug           string    `json:"slug"`
	CategoryID     int       `json:"category_id"`
	AuthorID       int       `json:"author_id"`
	CreateDate     time.Time `json:"create_date"`
	LastUpdateDate time.Time `json:"last_update_date"`
}
