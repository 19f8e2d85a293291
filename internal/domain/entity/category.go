package entity

// Category agrupa posts del blog. ID = 0 indica que aún no fue asignado por el almacenamiento.
type Category struct {
	ID    int
	Name  string
	Slug  string
	Posts []Post // referencia inversa, no es propiedad de la categoría
}

// NewCategory crea una categoría sin ID y sin posts, lista para persistir.
func NewCategory(name, slug string) *Category {
	return &Category{
		ID:    0,
		Name:  name,
		Slug:  slug,
		Posts: []Post{},
	}
}
