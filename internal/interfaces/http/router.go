package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ludoteca/ludoteca-api/internal/application/auth"
	"github.com/ludoteca/ludoteca-api/internal/application/sales"
	"github.com/ludoteca/ludoteca-api/internal/application/statistics"
	"github.com/ludoteca/ludoteca-api/internal/application/usecase"
	"github.com/ludoteca/ludoteca-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	CustomerUC     *usecase.CustomerUseCase
	ProductUC      *usecase.ProductUseCase
	PaymentMethUC  *usecase.PaymentMethodUseCase
	SalesUC        *sales.UseCase
	ReceiptPDFUC   *sales.ReceiptPDFUseCase
	StatisticsUC   *statistics.UseCase
	Log            *logger.Logger
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	clientes.Post("/", customerHandler.Create)
	clientes.Get("/", customerHandler.List)
	clientes.Put("/:id", customerHandler.Update)
	clientes.Delete("/:id", customerHandler.Delete)

	// Productos / catálogo de juegos (protegido)
	productos := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)

	// Métodos de pago (protegido)
	metodos := protected.Group("/metodos-pago")
	methodHandler := NewPaymentMethodHandler(deps.PaymentMethUC)
	metodos.Post("/", methodHandler.Create)
	metodos.Get("/", methodHandler.List)

	// Ventas (protegido)
	ventas := protected.Group("/ventas")
	saleHandler := NewSaleHandler(deps.SalesUC, deps.ReceiptPDFUC)
	ventas.Post("/", saleHandler.Create)
	ventas.Get("/", saleHandler.List)
	ventas.Delete("/:id", saleHandler.Delete)
	ventas.Get("/:id/comprobante", saleHandler.DownloadReceipt)

	// Estadísticas (protegido)
	estadisticas := protected.Group("/estadisticas")
	statsHandler := NewStatisticsHandler(deps.StatisticsUC, deps.Log)
	estadisticas.Get("/", statsHandler.Get)
}
