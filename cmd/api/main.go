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

	"github.com/ludoteca/ludoteca-api/internal/application/auth"
	"github.com/ludoteca/ludoteca-api/internal/application/sales"
	"github.com/ludoteca/ludoteca-api/internal/application/statistics"
	"github.com/ludoteca/ludoteca-api/internal/application/usecase"
	infrapdf "github.com/ludoteca/ludoteca-api/internal/infrastructure/pdf"
	"github.com/ludoteca/ludoteca-api/internal/infrastructure/postgres"
	httpRouter "github.com/ludoteca/ludoteca-api/internal/interfaces/http"
	"github.com/ludoteca/ludoteca-api/pkg/config"
	"github.com/ludoteca/ludoteca-api/pkg/logger"
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
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	statsRepo := postgres.NewStatisticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	methodUC := usecase.NewPaymentMethodUseCase(methodRepo)
	salesUC := sales.NewUseCase(txRunner, saleRepo, customerRepo, methodRepo, statsRepo)
	statisticsUC := statistics.NewUseCase(statsRepo)

	// PDF: comprobante de venta
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptPDFUC := sales.NewReceiptPDFUseCase(saleRepo, customerRepo, productRepo, methodRepo, pdfGenerator)

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
		Title:    "Ludoteca API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		ProductUC:     productUC,
		PaymentMethUC: methodUC,
		SalesUC:       salesUC,
		ReceiptPDFUC:  receiptPDFUC,
		StatisticsUC:  statisticsUC,
		Log:           log,
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
