package dto

import (
	"github.com/jhoicas/blog-api/internal/domain/validation"
)

// EditorCategoryRequest entrada para crear o actualizar una categoría.
type EditorCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryConstraints reglas de EditorCategoryRequest, en orden de evaluación.
var CategoryConstraints = []validation.Constraint[EditorCategoryRequest]{
	{Field: "name", Kind: validation.Required, Message: "el nombre es obligatorio",
		Value: func(in EditorCategoryRequest) any { return in.Name }},
	{Field: "name", Kind: validation.Length, Min: 3, Max: 40, Message: "este campo debe contener entre 3 y 40 caracteres",
		Value: func(in EditorCategoryRequest) any { return in.Name }},
	{Field: "slug", Kind: validation.Required, Message: "el slug es obligatorio",
		Value: func(in EditorCategoryRequest) any { return in.Slug }},
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Slug  string         `json:"slug"`
	Posts []PostResponse `json:"posts"`
}
