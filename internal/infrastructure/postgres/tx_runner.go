package postgres

import (
	"context"
	"fmt"
)

// withTx inicia una transacción sobre q, ejecuta fn y hace Commit o Rollback.
// El error de fn se devuelve sin envolver para que el caso de uso lo clasifique.
func withTx(ctx context.Context, q Querier, fn func(tx Querier) error) error {
	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return writeError("commit transaction", err)
	}
	return nil
}
