package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/dto"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
	"github.com/tu-usuario/banco-alimentos-api/pkg/jwt"
)

// Vigencia del código OTP enviado por email.
const otpTTL = 10 * time.Minute

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro con verificación OTP
// por email y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mail     MailSender
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mail MailSender, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mail: mail, jwtCfg: jwtCfg}
}

// Register crea un usuario en estado pending, hashea el password con bcrypt y
// envía el código OTP al email. La cuenta se activa en VerifyOTP.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role != entity.RoleAdmin {
		role = entity.RoleVoluntario
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	code, err := generateOTP()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "pending",
		OTP:          code,
		OTPExpiresAt: now.Add(otpTTL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := uc.mail.SendOTP(ctx, user.Email, code); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// RequestOTP genera y envía un nuevo código al email de un usuario existente.
func (uc *AuthUseCase) RequestOTP(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	code, err := generateOTP()
	if err != nil {
		return err
	}
	user.OTP = code
	user.OTPExpiresAt = time.Now().Add(otpTTL)
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	return uc.mail.SendOTP(ctx, user.Email, code)
}

// VerifyOTP valida el código, activa la cuenta y devuelve un token.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, in dto.OTPVerifyRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.OTP == "" || user.OTP != in.Code || time.Now().After(user.OTPExpiresAt) {
		return nil, domain.ErrInvalidOTP
	}
	user.Status = "active"
	user.OTP = ""
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return uc.loginResponse(user)
}

// Login verifica email/password y devuelve token + usuario. Las cuentas sin
// verificar (pending) no pueden entrar.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.loginResponse(user)
}

func (uc *AuthUseCase) loginResponse(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// generateOTP produce un código de 6 dígitos con crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	}
}
