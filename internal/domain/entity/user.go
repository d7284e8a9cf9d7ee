package entity

import "time"

// Roles observados para User. No hay constraint formal: el campo es abierto.
const (
	RoleBuyer   = "buyer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// Estados de cuenta.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// User representa una cuenta del marketplace. El email es la llave de negocio:
// el registro es upsert-por-email y una cuenta nunca se elimina.
type User struct {
	ID            string
	Email         string
	Name          string
	Photo         string
	Role          string  // buyer, manager, admin
	Status        string  // active, suspended
	SuspendReason *string // solo tiene sentido cuando Status == suspended
	CreatedAt     time.Time
}
