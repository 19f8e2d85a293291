// Package validation evalúa restricciones declarativas sobre los payloads de entrada
// antes de tocar el almacenamiento. Cada entidad declara su lista de Constraint y un único
// validador genérico las recorre en orden de declaración.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/badoux/checkmail"
)

// Kind tipo de restricción.
type Kind int

const (
	// Required: string no vacío (ignorando espacios) o entero distinto de cero.
	Required Kind = iota
	// Length: cantidad de runas dentro de [Min, Max] inclusive. Max = 0 significa sin tope.
	Length
	// Positive: entero > 0.
	Positive
	// MaxBytes: longitud en bytes (UTF-8) <= Max. Para límites de librerías que cuentan
	// bytes, como los 72 de bcrypt.
	MaxBytes
	// Email: formato de correo válido, sin contar espacios en los extremos. Un string vacío
	// no se evalúa (lo cubre Required).
	Email
)

// Constraint describe una regla sobre un campo de T.
type Constraint[T any] struct {
	Field   string
	Kind    Kind
	Min     int
	Max     int
	Message string // opcional; si está vacío se genera uno por defecto
	Value   func(T) any
}

// Validate aplica las restricciones en orden y devuelve un mensaje por cada regla violada.
// Devuelve nil si el payload es válido.
func Validate[T any](in T, constraints []Constraint[T]) []string {
	var messages []string
	for _, c := range constraints {
		if ok := check(c.Kind, c.Min, c.Max, c.Value(in)); !ok {
			messages = append(messages, c.message())
		}
	}
	return messages
}

func check(kind Kind, lo, hi int, v any) bool {
	switch kind {
	case Required:
		switch x := v.(type) {
		case string:
			return strings.TrimSpace(x) != ""
		case int:
			return x != 0
		case int64:
			return x != 0
		case nil:
			return false
		}
		return true
	case Length:
		s, ok := asString(v)
		if !ok {
			return true
		}
		n := utf8.RuneCountInString(s)
		if n < lo {
			return false
		}
		return hi <= 0 || n <= hi
	case Positive:
		switch x := v.(type) {
		case int:
			return x > 0
		case int64:
			return x > 0
		}
		return false
	case MaxBytes:
		s, ok := asString(v)
		return !ok || len(s) <= hi
	case Email:
		s, ok := asString(v)
		s = strings.TrimSpace(s)
		if !ok || s == "" {
			return true
		}
		return checkmail.ValidateFormat(s) == nil
	}
	return true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func (c Constraint[T]) message() string {
	if c.Message != "" {
		return c.Message
	}
	switch c.Kind {
	case Required:
		return fmt.Sprintf("el campo %s es obligatorio", c.Field)
	case Length:
		if c.Max > 0 {
			return fmt.Sprintf("el campo %s debe contener entre %d y %d caracteres", c.Field, c.Min, c.Max)
		}
		return fmt.Sprintf("el campo %s debe contener al menos %d caracteres", c.Field, c.Min)
	case Positive:
		return fmt.Sprintf("el campo %s debe ser un entero positivo", c.Field)
	case MaxBytes:
		return fmt.Sprintf("el campo %s no puede superar %d bytes", c.Field, c.Max)
	case Email:
		return fmt.Sprintf("el campo %s no es un email válido", c.Field)
	}
	return fmt.Sprintf("el campo %s es inválido", c.Field)
}
