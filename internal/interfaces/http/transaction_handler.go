package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/dto"
	appinventory "github.com/tu-usuario/banco-alimentos-api/internal/application/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/application/usecase"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
)

// TransactionHandler expone el libro de movimientos: consulta, operación
// individual sobre stock y reparación del inventario.
type TransactionHandler struct {
	stock *appinventory.StockUseCase
	query *usecase.TransactionQueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(stock *appinventory.StockUseCase, query *usecase.TransactionQueryUseCase) *TransactionHandler {
	return &TransactionHandler{stock: stock, query: query}
}

// List godoc
// @Summary      Listar transacciones (más recientes primero)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/v1/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.query.List(page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Aplicar una operación de stock (Receive o Distribute)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "product_id, quantity, unit, operation, purpose"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.stock.ApplyOperation(c.Context(), appinventory.OperationInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Unit:      inventory.Unit(in.Unit),
		Operation: in.Operation,
		Purpose:   in.Purpose,
		Batch:     in.Batch,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToTransactionResponse(entry))
}

// Restore godoc
// @Summary      Reconstruir las cantidades desde el libro (solo admin)
// @Description  Pone todas las cantidades en cero y repliega el historial
//
//	completo en una transacción atómica. Operación de reparación.
//
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RestoreResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/transactions/restore [post]
func (h *TransactionHandler) Restore(c *fiber.Ctx) error {
	n, err := h.stock.Restore(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.RestoreResponse{ProductsReconciled: n})
}
