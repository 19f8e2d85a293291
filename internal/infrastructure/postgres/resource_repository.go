package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/blog-api/internal/domain"
	"github.com/jhoicas/blog-api/internal/domain/repository"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Table mapea una entidad a su tabla. Las columnas escribibles se listan en el orden
// en que se generan los SET y VALUES.
type Table[T any] struct {
	Name string
	// Columns columnas leídas por Scan, en orden.
	Columns []string
	Scan    func(row pgx.Row) (*T, error)
	// Insert y Update devuelven columnas y valores a escribir.
	Insert func(e *T) ([]string, []any)
	Update func(e *T) ([]string, []any)
	// Returning columnas generadas por la base que se leen tras INSERT (por ejemplo id).
	Returning     []string
	ReturningDest func(e *T) []any
	// UpdateReturning columnas que se releen tras UPDATE; puede ser vacío.
	UpdateReturning     []string
	UpdateReturningDest func(e *T) []any
	ID                  func(e *T) int
}

// ResourceRepo repositorio CRUD genérico sobre una Table.
type ResourceRepo[T any] struct {
	q    Querier
	t    Table[T]
	inTx bool
}

// NewResourceRepo construye el repositorio sobre un pool o una transacción.
func NewResourceRepo[T any](q Querier, t Table[T]) *ResourceRepo[T] {
	return &ResourceRepo[T]{q: q, t: t}
}

// List devuelve todas las filas ordenadas por id.
func (r *ResourceRepo[T]) List(ctx context.Context) ([]*T, error) {
	return r.listWhere(ctx, nil)
}

func (r *ResourceRepo[T]) listWhere(ctx context.Context, pred sq.Sqlizer) ([]*T, error) {
	b := psql.Select(r.t.Columns...).From(r.t.Name).OrderBy("id")
	if pred != nil {
		b = b.Where(pred)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", r.t.Name, err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.t.Name, err)
	}
	defer rows.Close()

	var list []*T
	for rows.Next() {
		e, err := r.t.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.t.Name, err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.t.Name, err)
	}
	if list == nil {
		list = []*T{}
	}
	return list, nil
}

// GetByID obtiene una fila por id. Dentro de WithinTx la fila queda bloqueada (FOR UPDATE).
func (r *ResourceRepo[T]) GetByID(ctx context.Context, id int) (*T, error) {
	return r.getWhere(ctx, sq.Eq{"id": id})
}

func (r *ResourceRepo[T]) getWhere(ctx context.Context, pred sq.Sqlizer) (*T, error) {
	b := psql.Select(r.t.Columns...).From(r.t.Name).Where(pred)
	if r.inTx {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", r.t.Name, err)
	}
	e, err := r.t.Scan(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.t.Name, err)
	}
	return e, nil
}

// Create inserta la fila y asigna las columnas generadas (id, fechas) a e.
func (r *ResourceRepo[T]) Create(ctx context.Context, e *T) error {
	cols, vals := r.t.Insert(e)
	query, args, err := psql.Insert(r.t.Name).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + strings.Join(r.t.Returning, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", r.t.Name, err)
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(r.t.ReturningDest(e)...); err != nil {
		return writeError("insert "+r.t.Name, err)
	}
	return nil
}

// Update sobrescribe las columnas escribibles. Si la fila ya no existe es un conflicto.
func (r *ResourceRepo[T]) Update(ctx context.Context, e *T) error {
	id := r.t.ID(e)
	cols, vals := r.t.Update(e)
	b := psql.Update(r.t.Name)
	for i, c := range cols {
		b = b.Set(c, vals[i])
	}
	b = b.Where(sq.Eq{"id": id})

	if len(r.t.UpdateReturning) > 0 {
		query, args, err := b.Suffix("RETURNING " + strings.Join(r.t.UpdateReturning, ", ")).ToSql()
		if err != nil {
			return fmt.Errorf("build update %s: %w", r.t.Name, err)
		}
		if err := r.q.QueryRow(ctx, query, args...).Scan(r.t.UpdateReturningDest(e)...); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return rowVanished("update "+r.t.Name, id)
			}
			return writeError("update "+r.t.Name, err)
		}
		return nil
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update %s: %w", r.t.Name, err)
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return writeError("update "+r.t.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return rowVanished("update "+r.t.Name, id)
	}
	return nil
}

// Delete elimina por id. Si no se afectó ninguna fila es un conflicto.
func (r *ResourceRepo[T]) Delete(ctx context.Context, id int) error {
	query, args, err := psql.Delete(r.t.Name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", r.t.Name, err)
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return writeError("delete "+r.t.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return rowVanished("delete "+r.t.Name, id)
	}
	return nil
}

// WithinTx ejecuta fn con un repositorio atado a una transacción nueva.
func (r *ResourceRepo[T]) WithinTx(ctx context.Context, fn func(tx repository.Repository[T]) error) error {
	return withTx(ctx, r.q, func(tx Querier) error {
		return fn(&ResourceRepo[T]{q: tx, t: r.t, inTx: true})
	})
}

func rowVanished(op string, id int) error {
	return fmt.Errorf("%s: %w: fila %d no afectada", op, domain.ErrWriteConflict, id)
}
