package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidOTP         = errors.New("código OTP inválido o expirado")
	// ErrConsistency: la unidad atómica no pudo confirmarse (conflicto de
	// almacenamiento). Nada parcial quedó persistido; reintentar es seguro.
	ErrConsistency = errors.New("la operación no pudo confirmarse")
)

// InsufficientStockError lleva las cantidades exactas (en unidades base) para
// que la capa HTTP responda con los números involucrados y no un error genérico.
type InsufficientStockError struct {
	ProductID string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient quantity. Available: %s, Requested: %s",
		e.Available.String(), e.Requested.String())
}

// Is permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
