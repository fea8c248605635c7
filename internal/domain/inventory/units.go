package inventory

import "github.com/shopspring/decimal"

// Unit unidad de medida declarada en una operación de inventario.
type Unit string

// Unidades conocidas y su multiplicador hacia unidades base.
const (
	UnitPcs  Unit = "pcs"
	UnitKg   Unit = "kg"
	UnitG    Unit = "g"
	UnitL    Unit = "l"
	UnitMl   Unit = "ml"
	UnitBox  Unit = "box"
	UnitPack Unit = "pack"
)

// Tabla fija de multiplicadores. decimal evita la deriva de punto flotante
// al acumular conversiones de gramos/mililitros.
var multipliers = map[Unit]decimal.Decimal{
	UnitPcs:  decimal.NewFromInt(1),
	UnitKg:   decimal.NewFromInt(1),
	UnitG:    decimal.New(1, -3), // 0.001
	UnitL:    decimal.NewFromInt(1),
	UnitMl:   decimal.New(1, -3), // 0.001
	UnitBox:  decimal.NewFromInt(10),
	UnitPack: decimal.NewFromInt(5),
}

// Multiplier devuelve el multiplicador hacia unidades base.
// Unidades desconocidas usan multiplicador 1.
func Multiplier(u Unit) decimal.Decimal {
	if m, ok := multipliers[u]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// BaseQuantity convierte una cantidad declarada a unidades base.
// La conversión se aplica UNA sola vez, aquí; las entradas del libro guardan
// la cantidad declarada y la unidad, nunca una cantidad pre-convertida.
func BaseQuantity(qty decimal.Decimal, u Unit) decimal.Decimal {
	return qty.Mul(Multiplier(u))
}

// Known indica si la unidad pertenece a la tabla fija.
func Known(u Unit) bool {
	_, ok := multipliers[u]
	return ok
}
