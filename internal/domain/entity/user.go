package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin      = "admin"
	RoleVoluntario = "voluntario"
)

// User representa un usuario del sistema (administradores y voluntarios).
// OTP y OTPExpiresAt soportan la verificación de email en el registro.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // pending, active
	OTP          string
	OTPExpiresAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
