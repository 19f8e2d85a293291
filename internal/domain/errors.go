package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrWriteConflict   = errors.New("conflicto al escribir en el almacenamiento")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrInternal        = errors.New("falla interna")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidPassword = errors.New("contraseña incorrecta")
)

// Code identifica un error numerado estable expuesto al cliente.
type Code string

const (
	CodeInternal      Code = "ERR-00"
	CodeNotFound      Code = "ERR-01"
	CodeCreateFailed  Code = "ERR-02"
	CodeUpdateFailed  Code = "ERR-03"
	CodeDeleteFailed  Code = "ERR-04"
	CodeInvalidBody   Code = "ERR-05"
	CodeUnauthorized  Code = "ERR-06"
	CodeRouteNotFound Code = "ERR-07"
	CodeValidation    Code = "VALIDATION"
)

// Kind clasifica un Error para decidir el status HTTP.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindWriteConflict
	KindUnauthorized
)

// Error es el error tipado que cruza la frontera entre casos de uso y HTTP.
// Messages son los textos que ve el cliente; Cause nunca se serializa.
type Error struct {
	Kind     Kind
	Code     Code
	Messages []string
	Cause    error
}

func (e *Error) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is permite comparar contra los sentinels del paquete según el Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrWriteConflict:
		return e.Kind == KindWriteConflict
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrInternal:
		return e.Kind == KindInternal
	}
	return false
}

// NewValidation crea un error 400 con un mensaje por restricción violada.
func NewValidation(messages []string) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Messages: messages}
}

// NewInvalidBody crea un error 400 para cuerpos que no se pueden decodificar.
func NewInvalidBody(cause error) *Error {
	return &Error{
		Kind:     KindValidation,
		Code:     CodeInvalidBody,
		Messages: []string{string(CodeInvalidBody) + " cuerpo de la petición inválido"},
		Cause:    cause,
	}
}

// NewNotFound crea un error 404 que nombra el id buscado.
func NewNotFound(resource string, id int) *Error {
	return &Error{
		Kind:     KindNotFound,
		Code:     CodeNotFound,
		Messages: []string{fmt.Sprintf("%s no se encontró %s para el id = %d", CodeNotFound, resource, id)},
	}
}

// NewRouteNotFound crea un error 404 para rutas que no existen.
func NewRouteNotFound(path string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Code:     CodeRouteNotFound,
		Messages: []string{fmt.Sprintf("%s ruta no encontrada: %s", CodeRouteNotFound, path)},
	}
}

// NewWriteConflict crea un error 500 con el código específico de la operación.
func NewWriteConflict(code Code, message string, cause error) *Error {
	return &Error{
		Kind:     KindWriteConflict,
		Code:     code,
		Messages: []string{fmt.Sprintf("%s %s", code, message)},
		Cause:    cause,
	}
}

// NewUnauthorized crea un error 401 para credenciales inválidas.
func NewUnauthorized(cause error) *Error {
	return &Error{
		Kind:     KindUnauthorized,
		Code:     CodeUnauthorized,
		Messages: []string{string(CodeUnauthorized) + " credenciales inválidas"},
		Cause:    cause,
	}
}

// NewInternal crea el error genérico 500.
func NewInternal(cause error) *Error {
	return &Error{
		Kind:     KindInternal,
		Code:     CodeInternal,
		Messages: []string{string(CodeInternal) + " falla interna del servidor"},
		Cause:    cause,
	}
}
