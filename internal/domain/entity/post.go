package entity

import "time"

// Post representa una publicación del blog. Pertenece a una Category y tiene un autor (User).
type Post struct {
	ID             int
	Title          string
	Summary        string
	Body           string
	Slug           string // único por tabla
	CategoryID     int
	AuthorID       int
	CreateDate     time.Time
	LastUpdateDate time.Time
}
