package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/blog-api/internal/domain"
)

// Códigos SQLSTATE que se etiquetan en el mensaje del error para los logs.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// writeError envuelve un error de escritura. Todo error reportado por el servidor
// se marca como domain.ErrWriteConflict; los errores de red o de contexto quedan como
// fallas internas. Las violaciones de unicidad y de llave foránea llevan su etiqueta.
func writeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if label := violation(err); label != "" {
		return fmt.Errorf("%s: %s: %w: %w", op, label, domain.ErrWriteConflict, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrWriteConflict, err)
}

func violation(err error) string {
	switch {
	case isUniqueViolation(err):
		return "unique_violation"
	case isForeignKeyViolation(err):
		return "foreign_key_violation"
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
