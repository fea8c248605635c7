package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/auth"
	"github.com/tu-usuario/banco-alimentos-api/internal/application/dto"
)

// AuthHandler maneja registro, login y verificación OTP.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y name son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// RequestOTP godoc
// @Summary      Reenviar código de verificación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OTPRequest  true  "email"
// @Success      202   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var in dto.OTPRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email requerido"})
	}
	if err := h.uc.RequestOTP(c.Context(), in.Email); err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "código enviado"})
}

// VerifyOTP godoc
// @Summary      Verificar código OTP y activar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OTPVerifyRequest  true  "email, code"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var in dto.OTPVerifyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y code son requeridos"})
	}
	out, err := h.uc.VerifyOTP(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
