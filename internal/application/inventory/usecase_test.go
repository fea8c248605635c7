package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/tu-usuario/banco-alimentos-api/internal/application/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type env struct {
	store *memStore
	uc    *appinv.StockUseCase
}

func newEnv() *env {
	store := newMemStore()
	uc := appinv.NewStockUseCase(
		&memTxRunner{store},
		&memProductRepo{store},
		&memTransactionRepo{store},
	)
	return &env{store: store, uc: uc}
}

func (e *env) addProduct(t *testing.T, id, name, quantity string) {
	t.Helper()
	repo := &memProductRepo{e.store}
	require.NoError(t, repo.Create(&entity.Product{
		ID:        id,
		Name:      name,
		Quantity:  decimal.RequireFromString(quantity),
		CreatedAt: time.Now(),
	}))
}

func (e *env) quantity(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	p, err := (&memProductRepo{e.store}).GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// ApplyOperation (mutador de stock)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: Rice en 100 kg; Receive 50 kg "Donation" → 150 y una entrada
// Receive completed.
func TestApplyOperation_ReceiveSumaStock(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "100")

	entry, err := e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "rice",
		Quantity:  dec("50"),
		Unit:      domaininv.UnitKg,
		Operation: entity.OperationReceive,
		Purpose:   "Donation",
		UserID:    "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, entity.StatusCompleted, entry.Status)
	assert.Equal(t, entity.OperationReceive, entry.Operation)
	assert.Equal(t, "Rice", entry.ProductName)
	assert.True(t, e.quantity(t, "rice").Equal(dec("150")),
		"100 + 50 kg deben dar 150, obtenido %s", e.quantity(t, "rice"))
	assert.Len(t, e.store.transactions, 1)
}

// Escenario B: Rice en 150; Distribute 200 kg → InsufficientStock con los
// números exactos y la cantidad intacta. Queda una entrada failed como rastro.
func TestApplyOperation_DistributeInsuficiente(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "150")

	_, err := e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "rice",
		Quantity:  dec("200"),
		Unit:      domaininv.UnitKg,
		Operation: entity.OperationDistribute,
		Purpose:   "NGO drop",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Available: 150")
	assert.Contains(t, err.Error(), "Requested: 200")

	assert.True(t, e.quantity(t, "rice").Equal(dec("150")), "la cantidad no debe cambiar")

	// La entrada rechazada queda con status failed, fuera de la unidad atómica.
	require.Len(t, e.store.transactions, 1)
	assert.Equal(t, entity.StatusFailed, e.store.transactions[0].Status)
}

func TestApplyOperation_DistributeRestaStock(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "100")

	_, err := e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "rice",
		Quantity:  dec("30"),
		Unit:      domaininv.UnitKg,
		Operation: entity.OperationDistribute,
		Purpose:   "Comedor comunitario",
	})
	require.NoError(t, err)
	assert.True(t, e.quantity(t, "rice").Equal(dec("70")))
}

// La conversión de unidades se aplica una sola vez: distribuir 2 box (x10)
// consume 20 unidades base; 500 g consumen 0.5.
func TestApplyOperation_ConversionDeUnidades(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "beans", "Beans", "25")

	_, err := e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "beans",
		Quantity:  dec("2"),
		Unit:      domaininv.UnitBox,
		Operation: entity.OperationDistribute,
		Purpose:   "Reparto",
	})
	require.NoError(t, err)
	assert.True(t, e.quantity(t, "beans").Equal(dec("5")))

	_, err = e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "beans",
		Quantity:  dec("500"),
		Unit:      domaininv.UnitG,
		Operation: entity.OperationReceive,
		Purpose:   "Donación",
	})
	require.NoError(t, err)
	assert.True(t, e.quantity(t, "beans").Equal(dec("5.5")))
}

// Unidades desconocidas no fallan: multiplicador 1.
func TestApplyOperation_UnidadDesconocidaMultiplicaPorUno(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "10")

	_, err := e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "rice",
		Quantity:  dec("3"),
		Unit:      domaininv.Unit("docena"),
		Operation: entity.OperationReceive,
		Purpose:   "Donación",
	})
	require.NoError(t, err)
	assert.True(t, e.quantity(t, "rice").Equal(dec("13")))
}

func TestApplyOperation_Validacion(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "10")

	base := appinv.OperationInput{
		ProductID: "rice",
		Quantity:  dec("1"),
		Unit:      domaininv.UnitKg,
		Operation: entity.OperationReceive,
		Purpose:   "Donación",
	}

	cases := map[string]func(in *appinv.OperationInput){
		"cantidad cero":        func(in *appinv.OperationInput) { in.Quantity = decimal.Zero },
		"cantidad negativa":    func(in *appinv.OperationInput) { in.Quantity = dec("-5") },
		"unidad ausente":       func(in *appinv.OperationInput) { in.Unit = "" },
		"propósito vacío":      func(in *appinv.OperationInput) { in.Purpose = "" },
		"operación no válida":  func(in *appinv.OperationInput) { in.Operation = "Adjust" },
		"producto sin indicar": func(in *appinv.OperationInput) { in.ProductID = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := e.uc.ApplyOperation(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	assert.Empty(t, e.store.transactions, "la validación no debe dejar entradas")
	assert.True(t, e.quantity(t, "rice").Equal(dec("10")))
}

func TestApplyOperation_ProductoNoExiste(t *testing.T) {
	e := newEnv()
	_, err := e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "nope",
		Quantity:  dec("1"),
		Unit:      domaininv.UnitPcs,
		Operation: entity.OperationReceive,
		Purpose:   "Donación",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReceiveBulk (recepción en lote)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario C: [{Rice, 10 kg}, {Milk, 5 kg}] "NGO drop" → ambas cantidades
// suben, dos líneas de recepción y UNA entrada Receive agregada.
func TestReceiveBulk_LoteValido(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "100")
	e.addProduct(t, "milk", "Milk", "20")

	res, err := e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines: []appinv.ReceiveLine{
			{ProductID: "rice", Quantity: dec("10"), Unit: domaininv.UnitKg},
			{ProductID: "milk", Quantity: dec("5"), Unit: domaininv.UnitKg},
		},
		Purpose: "NGO drop",
		Batch:   "B-2026-001",
		UserID:  "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, e.quantity(t, "rice").Equal(dec("110")))
	assert.True(t, e.quantity(t, "milk").Equal(dec("25")))

	require.Len(t, res.Receipts, 2)
	assert.Equal(t, "Rice", res.Receipts[0].ProductName)
	assert.True(t, res.Receipts[0].Quantity.Equal(dec("10")), "línea en unidades base")

	require.Len(t, res.Products, 2)
	assert.True(t, res.Products[1].NewQuantity.Equal(dec("25")))

	// Una sola entrada agregada, sin producto, referenciando el lote.
	require.NotNil(t, res.Entry)
	assert.Equal(t, entity.OperationReceive, res.Entry.Operation)
	assert.Equal(t, entity.StatusCompleted, res.Entry.Status)
	assert.Empty(t, res.Entry.ProductID)
	assert.Equal(t, "B-2026-001", res.Entry.Batch)
	assert.Len(t, e.store.transactions, 1)
	assert.Len(t, e.store.receipts, 2)
}

// Atomicidad: una línea inválida entre N válidas revierte el lote completo.
func TestReceiveBulk_LineaInvalidaAbortaTodo(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "100")
	e.addProduct(t, "milk", "Milk", "20")

	_, err := e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines: []appinv.ReceiveLine{
			{ProductID: "rice", Quantity: dec("10"), Unit: domaininv.UnitKg},
			{ProductID: "fantasma", Quantity: dec("5"), Unit: domaininv.UnitKg},
		},
		Purpose: "NGO drop",
		Batch:   "B-2026-002",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.True(t, e.quantity(t, "rice").Equal(dec("100")), "ningún producto debe cambiar")
	assert.Empty(t, e.store.transactions, "ninguna entrada debe persistirse")
	assert.Empty(t, e.store.receipts, "ninguna línea de recepción debe persistirse")
}

func TestReceiveBulk_Validacion(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "100")

	_, err := e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines: nil, Purpose: "Donación",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lista vacía")

	_, err = e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines:   []appinv.ReceiveLine{{ProductID: "rice", Quantity: dec("1")}},
		Purpose: "",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "propósito vacío")

	_, err = e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines:   []appinv.ReceiveLine{{ProductID: "rice", Quantity: dec("0")}},
		Purpose: "Donación",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad no positiva")
}

// Unit vacía en una línea equivale a pcs.
func TestReceiveBulk_UnidadPorDefecto(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "1")

	res, err := e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines:   []appinv.ReceiveLine{{ProductID: "rice", Quantity: dec("4")}},
		Purpose: "Donación",
	})
	require.NoError(t, err)
	assert.Equal(t, domaininv.UnitPcs, res.Receipts[0].Unit)
	assert.True(t, e.quantity(t, "rice").Equal(dec("5")))
}

// ──────────────────────────────────────────────────────────────────────────────
// DistributeBulk (distribución en lote)
// ──────────────────────────────────────────────────────────────────────────────

func TestDistributeBulk_UnaEntradaPorLinea(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "100")
	e.addProduct(t, "milk", "Milk", "20")

	entries, err := e.uc.DistributeBulk(context.Background(), appinv.DistributeInput{
		Lines: []appinv.DistributeLine{
			{ProductID: "rice", Quantity: dec("10"), Unit: domaininv.UnitKg},
			{ProductID: "milk", Quantity: dec("5"), Unit: domaininv.UnitL},
		},
		Purpose: "Entrega semanal",
		Batch:   "D-2026-001",
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.OperationDistribute, entries[0].Operation)
	assert.True(t, e.quantity(t, "rice").Equal(dec("90")))
	assert.True(t, e.quantity(t, "milk").Equal(dec("15")))
}

func TestDistributeBulk_StockInsuficienteAbortaTodo(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "100")
	e.addProduct(t, "milk", "Milk", "2")

	_, err := e.uc.DistributeBulk(context.Background(), appinv.DistributeInput{
		Lines: []appinv.DistributeLine{
			{ProductID: "rice", Quantity: dec("10"), Unit: domaininv.UnitKg},
			{ProductID: "milk", Quantity: dec("5"), Unit: domaininv.UnitL},
		},
		Purpose: "Entrega semanal",
		Batch:   "D-2026-002",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, e.quantity(t, "rice").Equal(dec("100")), "la primera línea también debe revertirse")
	assert.Empty(t, e.store.transactions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore (replayer del libro)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario D: Receive(100), Distribute(30), Receive(20) sobre Rice → el
// replay pone Rice en 0 y pliega hasta 90.
func TestRestore_RecalculaDesdeCero(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "0")

	ops := []appinv.OperationInput{
		{ProductID: "rice", Quantity: dec("100"), Unit: domaininv.UnitKg, Operation: entity.OperationReceive, Purpose: "Donación"},
		{ProductID: "rice", Quantity: dec("30"), Unit: domaininv.UnitKg, Operation: entity.OperationDistribute, Purpose: "Entrega"},
		{ProductID: "rice", Quantity: dec("20"), Unit: domaininv.UnitKg, Operation: entity.OperationReceive, Purpose: "Donación"},
	}
	for _, op := range ops {
		_, err := e.uc.ApplyOperation(context.Background(), op)
		require.NoError(t, err)
	}
	require.True(t, e.quantity(t, "rice").Equal(dec("90")))

	// Simular deriva de la caché: la cantidad quedó corrupta.
	require.NoError(t, (&memProductRepo{e.store}).UpdateQuantity("rice", dec("999")))

	n, err := e.uc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, e.quantity(t, "rice").Equal(dec("90")), "el replay debe reconstruir 100-30+20")
}

// Idempotencia: dos replays consecutivos sin escrituras intermedias dejan las
// mismas cantidades.
func TestRestore_Idempotente(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "0")
	e.addProduct(t, "milk", "Milk", "0")

	_, err := e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "rice", Quantity: dec("40"), Unit: domaininv.UnitKg,
		Operation: entity.OperationReceive, Purpose: "Donación",
	})
	require.NoError(t, err)
	_, err = e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines:   []appinv.ReceiveLine{{ProductID: "milk", Quantity: dec("6"), Unit: domaininv.UnitL}},
		Purpose: "Donación", Batch: "B-1",
	})
	require.NoError(t, err)

	_, err = e.uc.Restore(context.Background())
	require.NoError(t, err)
	riceFirst := e.quantity(t, "rice")
	milkFirst := e.quantity(t, "milk")

	_, err = e.uc.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, e.quantity(t, "rice").Equal(riceFirst))
	assert.True(t, e.quantity(t, "milk").Equal(milkFirst))
}

// Los lotes de recepción también se reconstruyen (vía líneas de recepción),
// aunque su entrada agregada no referencia producto; las entradas failed se
// ignoran.
func TestRestore_PliegaLotesEIgnoraFallidas(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "0")
	e.addProduct(t, "milk", "Milk", "0")

	_, err := e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines: []appinv.ReceiveLine{
			{ProductID: "rice", Quantity: dec("10"), Unit: domaininv.UnitKg},
			{ProductID: "milk", Quantity: dec("5"), Unit: domaininv.UnitL},
		},
		Purpose: "NGO drop", Batch: "B-1",
	})
	require.NoError(t, err)

	// Distribución que falla por stock insuficiente → entrada failed.
	_, err = e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "milk", Quantity: dec("50"), Unit: domaininv.UnitL,
		Operation: entity.OperationDistribute, Purpose: "Entrega",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	n, err := e.uc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, e.quantity(t, "rice").Equal(dec("10")))
	assert.True(t, e.quantity(t, "milk").Equal(dec("5")), "la entrada failed no debe plegarse")
}

// Invariante: tras cualquier secuencia de operaciones, la cantidad de cada
// producto es la suma con signo de las entradas completed que lo referencian
// más sus líneas de recepción (verificado directo y vía replay).
func TestInvariante_CantidadIgualASumaDelLibro(t *testing.T) {
	e := newEnv()
	e.addProduct(t, "rice", "Rice", "0")

	_, err := e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "rice", Quantity: dec("3"), Unit: domaininv.UnitBox,
		Operation: entity.OperationReceive, Purpose: "Donación",
	})
	require.NoError(t, err)
	_, err = e.uc.ReceiveBulk(context.Background(), appinv.ReceiveInput{
		Lines:   []appinv.ReceiveLine{{ProductID: "rice", Quantity: dec("2500"), Unit: domaininv.UnitG}},
		Purpose: "Donación", Batch: "B-1",
	})
	require.NoError(t, err)
	_, err = e.uc.ApplyOperation(context.Background(), appinv.OperationInput{
		ProductID: "rice", Quantity: dec("12"), Unit: domaininv.UnitKg,
		Operation: entity.OperationDistribute, Purpose: "Entrega",
	})
	require.NoError(t, err)

	// Cálculo directo sobre el estado del libro.
	expected := decimal.Zero
	for _, tx := range e.store.transactions {
		if tx.Status != entity.StatusCompleted || tx.ProductID != "rice" {
			continue
		}
		expected = expected.Add(tx.BaseDelta())
	}
	for _, rec := range e.store.receipts {
		if rec.ProductID == "rice" {
			expected = expected.Add(rec.Quantity)
		}
	}

	// 30 + 2.5 - 12 = 20.5
	require.True(t, expected.Equal(dec("20.5")))
	assert.True(t, e.quantity(t, "rice").Equal(expected), "cantidad directa vs libro")

	_, err = e.uc.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, e.quantity(t, "rice").Equal(expected), "cantidad tras replay vs libro")
}
