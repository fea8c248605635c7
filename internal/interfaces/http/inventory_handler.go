package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/dto"
	appinventory "github.com/tu-usuario/banco-alimentos-api/internal/application/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/application/usecase"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
)

// InventoryHandler maneja las recepciones en lote y sus comprobantes.
type InventoryHandler struct {
	stock    *appinventory.StockUseCase
	receipts *appinventory.ReceiptUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *appinventory.StockUseCase, receipts *appinventory.ReceiptUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, receipts: receipts}
}

// Receive godoc
// @Summary      Recibir un lote de donaciones (todo o nada)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveRequest  true  "products, purpose, batch"
// @Success      201   {object}  dto.ReceiveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/receive [post]
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lines := make([]appinventory.ReceiveLine, 0, len(in.Products))
	for _, l := range in.Products {
		lines = append(lines, appinventory.ReceiveLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Unit:      inventory.Unit(l.Unit),
		})
	}
	result, err := h.stock.ReceiveBulk(c.Context(), appinventory.ReceiveInput{
		Lines:   lines,
		Purpose: in.Purpose,
		Batch:   in.Batch,
		UserID:  GetUserID(c),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toReceiveResponse(result))
}

// ListReceipts godoc
// @Summary      Listar líneas de recepción (más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {array}  dto.ReceiptResponse
// @Router       /api/v1/inventory [get]
func (h *InventoryHandler) ListReceipts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.receipts.List(page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReceiptResponse(r))
	}
	return c.JSON(out)
}

// BatchPDF godoc
// @Summary      Comprobante PDF de un lote de recepción
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        batch  path  string  true  "identificador del lote"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/receipts/{batch}/pdf [get]
func (h *InventoryHandler) BatchPDF(c *fiber.Ctx) error {
	batch := c.Params("batch")
	data, err := h.receipts.BatchPDF(c.Context(), batch)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recepcion-`+batch+`.pdf"`)
	return c.Send(data)
}

func toReceiveResponse(r *appinventory.ReceiveResult) dto.ReceiveResponse {
	out := dto.ReceiveResponse{
		Transaction: usecase.ToTransactionResponse(r.Entry),
	}
	for _, rec := range r.Receipts {
		out.Inventory = append(out.Inventory, toReceiptResponse(rec))
	}
	for _, p := range r.Products {
		out.Products = append(out.Products, dto.ReceiveProductSummary{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Added:       p.Added,
			NewQuantity: p.NewQuantity,
		})
	}
	return out
}

func toReceiptResponse(r *entity.InventoryReceipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Unit:        string(r.Unit),
		Purpose:     r.Purpose,
		Batch:       r.Batch,
		ReceivedBy:  r.ReceivedBy,
		CreatedAt:   r.CreatedAt,
	}
}
