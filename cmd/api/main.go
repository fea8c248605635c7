package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/auth"
	"github.com/tu-usuario/banco-alimentos-api/internal/application/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/application/usecase"
	inframail "github.com/tu-usuario/banco-alimentos-api/internal/infrastructure/mail"
	infrapdf "github.com/tu-usuario/banco-alimentos-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/banco-alimentos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/banco-alimentos-api/internal/interfaces/http"
	"github.com/tu-usuario/banco-alimentos-api/pkg/config"
	"github.com/tu-usuario/banco-alimentos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := inventory.NewStockUseCase(txRunner, productRepo, transactionRepo)
	pdfGenerator := infrapdf.NewReceiptPDFGenerator(cfg.App.Name)
	receiptUC := inventory.NewReceiptUseCase(receiptRepo, pdfGenerator)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	transactionUC := usecase.NewTransactionQueryUseCase(transactionRepo)

	mailSender := inframail.NewSMTPSender(cfg.SMTP)
	authUC := auth.NewAuthUseCase(userRepo, mailSender, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Banco de Alimentos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		TransactionUC: transactionUC,
		StockUC:       stockUC,
		ReceiptUC:     receiptUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
