package dto

// RegisterRequest entrada para registro de usuario.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// OTPRequest solicita el envío de un código de verificación al email.
type OTPRequest struct {
	Email string `json:"email"`
}

// OTPVerifyRequest verifica el código recibido por email.
type OTPVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
