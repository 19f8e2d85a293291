// Package memrepo implementa repository.Repository en memoria para los tests de casos de
// uso y handlers. Permite inyectar fallos por operación.
package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/blog-api/internal/domain"
	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/domain/repository"
)

// Op operación del repositorio para inyección de fallos.
type Op string

const (
	OpList   Op = "list"
	OpGet    Op = "get"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// ErrConflict simula un error de escritura reportado por la base.
var ErrConflict = fmt.Errorf("%w: simulated constraint violation", domain.ErrWriteConflict)

// Repo almacén en memoria con IDs autoincrementales.
type Repo[T any] struct {
	mu     sync.Mutex
	rows   map[int]T
	nextID int
	getID  func(*T) int
	setID  func(*T, int)
	fail   map[Op]error
	writes int
}

var _ repository.Repository[entity.Category] = (*Repo[entity.Category])(nil)

// New construye un repo vacío.
func New[T any](getID func(*T) int, setID func(*T, int)) *Repo[T] {
	return &Repo[T]{rows: map[int]T{}, nextID: 1, getID: getID, setID: setID, fail: map[Op]error{}}
}

// FailOn hace que op devuelva err hasta que se limpie con FailOn(op, nil).
func (r *Repo[T]) FailOn(op Op, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.fail, op)
		return
	}
	r.fail[op] = err
}

// Writes cantidad de escrituras exitosas (create, update, delete).
func (r *Repo[T]) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

// Len cantidad de filas.
func (r *Repo[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// Seed inserta filas directamente, asignando IDs.
func (r *Repo[T]) Seed(items ...T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range items {
		r.setID(&items[i], r.nextID)
		r.rows[r.nextID] = items[i]
		r.nextID++
	}
}

func (r *Repo[T]) List(ctx context.Context) ([]*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail[OpList]; err != nil {
		return nil, err
	}
	return r.filter(func(*T) bool { return true }), nil
}

// Filter devuelve las filas que cumplen keep, ordenadas por ID.
func (r *Repo[T]) Filter(keep func(*T) bool) []*T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(keep)
}

func (r *Repo[T]) filter(keep func(*T) bool) []*T {
	ids := make([]int, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		v := r.rows[id]
		if keep(&v) {
			out = append(out, &v)
		}
	}
	return out
}

func (r *Repo[T]) GetByID(ctx context.Context, id int) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail[OpGet]; err != nil {
		return nil, err
	}
	v, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *Repo[T]) Create(ctx context.Context, e *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail[OpCreate]; err != nil {
		return err
	}
	r.setID(e, r.nextID)
	r.rows[r.nextID] = *e
	r.nextID++
	r.writes++
	return nil
}

func (r *Repo[T]) Update(ctx context.Context, e *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail[OpUpdate]; err != nil {
		return err
	}
	id := r.getID(e)
	if _, ok := r.rows[id]; !ok {
		return ErrConflict
	}
	r.rows[id] = *e
	r.writes++
	return nil
}

func (r *Repo[T]) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail[OpDelete]; err != nil {
		return err
	}
	if _, ok := r.rows[id]; !ok {
		return ErrConflict
	}
	delete(r.rows, id)
	r.writes++
	return nil
}

// WithinTx ejecuta fn sobre el mismo repo. No hay rollback: los fallos inyectados
// ocurren antes de modificar el estado.
func (r *Repo[T]) WithinTx(ctx context.Context, fn func(tx repository.Repository[T]) error) error {
	return fn(r)
}
