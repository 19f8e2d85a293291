package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/blog-api/internal/domain"
	"github.com/jhoicas/blog-api/internal/domain/repository"
	"github.com/jhoicas/blog-api/internal/domain/validation"
)

// ResourceSpec describe una entidad para el CRUD genérico.
// E entidad, C entrada de creación, U entrada de actualización, R salida.
type ResourceSpec[E, C, U, R any] struct {
	// Label nombre con artículo usado en los mensajes ("la categoría").
	Label       string
	CreateRules []validation.Constraint[C]
	UpdateRules []validation.Constraint[U]
	// New construye una entidad nueva con ID = 0.
	New func(C) (*E, error)
	// Apply sobrescribe solo los campos mutables.
	Apply func(*E, U)
	ID    func(*E) int
	View  func(*E) R
}

// ResourceUseCase casos de uso CRUD para una entidad. Todos los errores que devuelve
// son *domain.Error con el código numerado correspondiente.
type ResourceUseCase[E, C, U, R any] struct {
	repo repository.Repository[E]
	spec ResourceSpec[E, C, U, R]
}

// NewResourceUseCase construye el caso de uso.
func NewResourceUseCase[E, C, U, R any](repo repository.Repository[E], spec ResourceSpec[E, C, U, R]) *ResourceUseCase[E, C, U, R] {
	return &ResourceUseCase[E, C, U, R]{repo: repo, spec: spec}
}

// List devuelve todas las filas en el orden del almacenamiento.
func (uc *ResourceUseCase[E, C, U, R]) List(ctx context.Context) ([]R, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.NewInternal(err)
	}
	out := make([]R, 0, len(list))
	for _, e := range list {
		out = append(out, uc.spec.View(e))
	}
	return out, nil
}

// GetByID obtiene una fila por clave primaria.
func (uc *ResourceUseCase[E, C, U, R]) GetByID(ctx context.Context, id int) (R, error) {
	var zero R
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return zero, domain.NewInternal(err)
	}
	if e == nil {
		return zero, domain.NewNotFound(uc.spec.Label, id)
	}
	return uc.spec.View(e), nil
}

// Create valida, persiste y devuelve la entidad con su ID generado.
func (uc *ResourceUseCase[E, C, U, R]) Create(ctx context.Context, in C) (int, R, error) {
	var zero R
	if msgs := validation.Validate(in, uc.spec.CreateRules); msgs != nil {
		return 0, zero, domain.NewValidation(msgs)
	}
	e, err := uc.spec.New(in)
	if err != nil {
		return 0, zero, domain.NewInternal(err)
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return 0, zero, uc.writeError(err, domain.CodeCreateFailed, "no fue posible crear "+uc.spec.Label)
	}
	return uc.spec.ID(e), uc.spec.View(e), nil
}

// Update valida y sobrescribe los campos mutables. Lectura y escritura van en la misma
// transacción con la fila bloqueada.
func (uc *ResourceUseCase[E, C, U, R]) Update(ctx context.Context, id int, in U) (R, error) {
	var out R
	if msgs := validation.Validate(in, uc.spec.UpdateRules); msgs != nil {
		return out, domain.NewValidation(msgs)
	}
	err := uc.repo.WithinTx(ctx, func(tx repository.Repository[E]) error {
		e, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.NewNotFound(uc.spec.Label, id)
		}
		uc.spec.Apply(e, in)
		if err := tx.Update(ctx, e); err != nil {
			return err
		}
		out = uc.spec.View(e)
		return nil
	})
	if err != nil {
		var zero R
		return zero, uc.writeError(err, domain.CodeUpdateFailed, "no fue posible actualizar "+uc.spec.Label)
	}
	return out, nil
}

// Delete elimina la fila si existe.
func (uc *ResourceUseCase[E, C, U, R]) Delete(ctx context.Context, id int) error {
	err := uc.repo.WithinTx(ctx, func(tx repository.Repository[E]) error {
		e, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.NewNotFound(uc.spec.Label, id)
		}
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return uc.writeError(err, domain.CodeDeleteFailed, "no fue posible eliminar "+uc.spec.Label)
	}
	return nil
}

// writeError traduce errores del almacenamiento: los *domain.Error pasan tal cual,
// los conflictos de escritura llevan el código de la operación y el resto es ERR-00.
func (uc *ResourceUseCase[E, C, U, R]) writeError(err error, code domain.Code, message string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	if errors.Is(err, domain.ErrWriteConflict) {
		return domain.NewWriteConflict(code, message, err)
	}
	return domain.NewInternal(err)
}
