package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/dto"
	appinventory "github.com/tu-usuario/banco-alimentos-api/internal/application/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/application/usecase"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
)

// DistributionHandler maneja las distribuciones en lote.
type DistributionHandler struct {
	stock *appinventory.StockUseCase
}

// NewDistributionHandler construye el handler.
func NewDistributionHandler(stock *appinventory.StockUseCase) *DistributionHandler {
	return &DistributionHandler{stock: stock}
}

// Create godoc
// @Summary      Distribuir varios productos en un lote (todo o nada)
// @Tags         distributions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DistributeRequest  true  "distributions, purpose, batch"
// @Success      201   {array}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/distributions [post]
func (h *DistributionHandler) Create(c *fiber.Ctx) error {
	var in dto.DistributeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lines := make([]appinventory.DistributeLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, appinventory.DistributeLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Unit:      inventory.Unit(l.Unit),
		})
	}
	entries, err := h.stock.DistributeBulk(c.Context(), appinventory.DistributeInput{
		Lines:   lines,
		Purpose: in.Purpose,
		Batch:   in.Batch,
		UserID:  GetUserID(c),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, usecase.ToTransactionResponse(e))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
