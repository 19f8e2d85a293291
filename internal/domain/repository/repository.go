package repository

import "context"

// Repository puerto CRUD genérico por id para una tabla (DIP).
// GetByID devuelve (nil, nil) si no existe la fila.
type Repository[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id int) error
	// WithinTx ejecuta fn con un repositorio atado a una transacción: commit si fn
	// devuelve nil, rollback en cualquier otro caso. Dentro de la transacción
	// GetByID bloquea la fila hasta el final.
	WithinTx(ctx context.Context, fn func(tx Repository[T]) error) error
}
