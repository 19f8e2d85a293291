package dto

import "github.com/jhoicas/blog-api/internal/domain/validation"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el caso de uso).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`
	Role     string `json:"role"`
}

// UpdateUserRequest entrada para actualizar un usuario. La contraseña no se modifica aquí.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
	Slug  string `json:"slug"`
	Role  string `json:"role"`
}

// CreateUserConstraints reglas de CreateUserRequest.
var CreateUserConstraints = []validation.Constraint[CreateUserRequest]{
	{Field: "name", Kind: validation.Required, Value: func(in CreateUserRequest) any { return in.Name }},
	{Field: "name", Kind: validation.Length, Min: 3, Max: 80, Value: func(in CreateUserRequest) any { return in.Name }},
	{Field: "email", Kind: validation.Required, Value: func(in CreateUserRequest) any { return in.Email }},
	{Field: "email", Kind: validation.Email, Value: func(in CreateUserRequest) any { return in.Email }},
	{Field: "password", Kind: validation.Required, Value: func(in CreateUserRequest) any { return in.Password }},
	{Field: "password", Kind: validation.Length, Min: 8, Max: 72, Value: func(in CreateUserRequest) any { return in.Password }},
	{Field: "password", Kind: validation.MaxBytes, Max: 72, Value: func(in CreateUserRequest) any { return in.Password }},
	{Field: "slug", Kind: validation.Required, Value: func(in CreateUserRequest) any { return in.Slug }},
}

// UpdateUserConstraints reglas de UpdateUserRequest.
var UpdateUserConstraints = []validation.Constraint[UpdateUserRequest]{
	{Field: "name", Kind: validation.Required, Value: func(in UpdateUserRequest) any { return in.Name }},
	{Field: "name", Kind: validation.Length, Min: 3, Max: 80, Value: func(in UpdateUserRequest) any { return in.Name }},
	{Field: "email", Kind: validation.Required, Value: func(in UpdateUserRequest) any { return in.Email }},
	{Field: "email", Kind: validation.Email, Value: func(in UpdateUserRequest) any { return in.Email }},
	{Field: "slug", Kind: validation.Required, Value: func(in UpdateUserRequest) any { return in.Slug }},
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
	Slug  string `json:"slug"`
	Role  string `json:"role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginConstraints reglas de LoginRequest.
var LoginConstraints = []validation.Constraint[LoginRequest]{
	{Field: "email", Kind: validation.Required, Value: func(in LoginRequest) any { return in.Email }},
	{Field: "password", Kind: validation.Required, Value: func(in LoginRequest) any { return in.Password }},
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string `json:"token"`
}

// ClaimsResponse claims del token autenticado.
type ClaimsResponse struct {
	Name      string            `json:"name"`
	Role      string            `json:"role"`
	Custom    map[string]string `json:"custom"`
	IssuedAt  int64             `json:"iat"`
	ExpiresAt int64             `json:"exp"`
}
