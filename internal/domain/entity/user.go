package entity

import "time"

// User representa una cuenta de la tienda.
// Email y PasswordHash son inmutables después del registro; el perfil
// (nombre y teléfono) se edita vía update.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Phone        string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
