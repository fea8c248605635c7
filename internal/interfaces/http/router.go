package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/auth"
	appinventory "github.com/tu-usuario/banco-alimentos-api/internal/application/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/application/usecase"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	TransactionUC *usecase.TransactionQueryUseCase
	StockUC       *appinventory.StockUseCase
	ReceiptUC     *appinventory.ReceiptUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/otp/request", authHandler.RequestOTP)
	authGroup.Post("/otp/verify", authHandler.VerifyOTP)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories (protegido; crear solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", RequireRole(entity.RoleAdmin), categoryHandler.Create)

	// Products (protegido; eliminar solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Transactions: libro de movimientos + operación individual + restore
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.StockUC, deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Post("/restore", RequireRole(entity.RoleAdmin), transactionHandler.Restore)
	transactions.Get("/:id", transactionHandler.GetByID)

	// Inventory: recepciones en lote y comprobantes
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.ReceiptUC)
	invGroup.Get("/", inventoryHandler.ListReceipts)
	invGroup.Post("/receive", inventoryHandler.Receive)
	invGroup.Get("/receipts/:batch/pdf", inventoryHandler.BatchPDF)

	// Distributions: salidas en lote
	distributions := protected.Group("/distributions")
	distributionHandler := NewDistributionHandler(deps.StockUC)
	distributions.Post("/", distributionHandler.Create)
}
