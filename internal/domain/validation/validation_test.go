package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/blog-api/internal/domain/validation"
)

type payload struct {
	Name  string
	Slug  string
	Email string
	Ref   int
}

var rules = []validation.Constraint[payload]{
	{Field: "name", Kind: validation.Required, Message: "el nombre es obligatorio", Value: func(p payload) any { return p.Name }},
	{Field: "name", Kind: validation.Length, Min: 3, Max: 40, Value: func(p payload) any { return p.Name }},
	{Field: "slug", Kind: validation.Required, Value: func(p payload) any { return p.Slug }},
	{Field: "email", Kind: validation.Email, Value: func(p payload) any { return p.Email }},
	{Field: "ref", Kind: validation.Positive, Value: func(p payload) any { return p.Ref }},
}

func TestValidate_PayloadValido(t *testing.T) {
	msgs := validation.Validate(payload{Name: "Tech", Slug: "tech", Email: "a@b.com", Ref: 1}, rules)
	assert.Nil(t, msgs)
}

func TestValidate_LimitesInclusivos(t *testing.T) {
	base := payload{Slug: "s", Ref: 1}

	base.Name = "abc"
	assert.Empty(t, validation.Validate(base, rules), "3 caracteres es válido")

	base.Name = strings.Repeat("x", 40)
	assert.Empty(t, validation.Validate(base, rules), "40 caracteres es válido")

	base.Name = "ab"
	assert.Equal(t, []string{"el campo name debe contener entre 3 y 40 caracteres"}, validation.Validate(base, rules))

	base.Name = strings.Repeat("x", 41)
	assert.Len(t, validation.Validate(base, rules), 1)
}

func TestValidate_CuentaRunasNoBytes(t *testing.T) {
	// "ção" son 3 runas y 5 bytes.
	msgs := validation.Validate(payload{Name: "ção", Slug: "s", Ref: 1}, rules)
	assert.Empty(t, msgs)
}

func TestValidate_OrdenDeDeclaracion(t *testing.T) {
	msgs := validation.Validate(payload{Email: "no-es-email"}, rules)
	assert.Equal(t, []string{
		"el nombre es obligatorio",
		"el campo name debe contener entre 3 y 40 caracteres",
		"el campo slug es obligatorio",
		"el campo email no es un email válido",
		"el campo ref debe ser un entero positivo",
	}, msgs)
}

func TestValidate_RequiredIgnoraEspacios(t *testing.T) {
	msgs := validation.Validate(payload{Name: "Tech", Slug: "   ", Ref: 1}, rules)
	assert.Equal(t, []string{"el campo slug es obligatorio"}, msgs)
}

func TestValidate_EmailVacioNoSeEvalua(t *testing.T) {
	msgs := validation.Validate(payload{Name: "Tech", Slug: "tech", Ref: 3}, rules)
	assert.Empty(t, msgs)
}

func TestValidate_LengthSinTope(t *testing.T) {
	r := []validation.Constraint[payload]{
		{Field: "name", Kind: validation.Length, Min: 8, Value: func(p payload) any { return p.Name }},
	}
	assert.Empty(t, validation.Validate(payload{Name: strings.Repeat("a", 500)}, r))
	assert.Equal(t, []string{"el campo name debe contener al menos 8 caracteres"},
		validation.Validate(payload{Name: "corto"}, r))
}

func TestValidate_MaxBytesCuentaBytes(t *testing.T) {
	r := []validation.Constraint[payload]{
		{Field: "name", Kind: validation.Length, Min: 1, Max: 72, Value: func(p payload) any { return p.Name }},
		{Field: "name", Kind: validation.MaxBytes, Max: 72, Value: func(p payload) any { return p.Name }},
	}
	assert.Empty(t, validation.Validate(payload{Name: strings.Repeat("a", 72)}, r))
	assert.Empty(t, validation.Validate(payload{Name: strings.Repeat("ñ", 36)}, r), "72 bytes es válido")

	// 40 runas pasan Length pero son 80 bytes.
	assert.Equal(t, []string{"el campo name no puede superar 72 bytes"},
		validation.Validate(payload{Name: strings.Repeat("ñ", 40)}, r))
}
