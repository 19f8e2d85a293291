package entity

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleAuthor = "author"
)

// User representa un autor del blog.
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Bio          string
	Image        string
	Slug         string
	Role         string
}
