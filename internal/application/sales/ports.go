package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los repos
// de ventas y productos. Si fn retorna error el caller hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptLine renglón enriquecido para el comprobante PDF.
type ReceiptLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptPDFGenerator genera la representación gráfica (PDF) de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		sale *entity.Sale,
		customerName, methodName string,
		lines []ReceiptLine,
	) ([]byte, error)
}
