package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/stats"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: fixtures mínimos de las cinco colecciones
// ──────────────────────────────────────────────────────────────────────────────

func fecha(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func ventaBase() *entity.Sale {
	return &entity.Sale{
		ID:              "v1",
		Date:            fecha(2024, time.March, 15),
		CustomerID:      strPtr("c1"),
		PaymentMethodID: strPtr("m1"),
		Total:           decimal.NewFromInt(500),
	}
}

func coleccionesBase() ([]*entity.Sale, []*entity.Product, []*entity.Customer, []*entity.PaymentMethod) {
	sales := []*entity.Sale{ventaBase()}
	products := []*entity.Product{{ID: "p1", Name: "Catan"}}
	customers := []*entity.Customer{{ID: "c1", FirstName: "Ana", LastName: "García"}}
	methods := []*entity.PaymentMethod{{ID: "m1", Name: "Efectivo"}}
	return sales, products, customers, methods
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del join en memoria
// ──────────────────────────────────────────────────────────────────────────────

func TestAssemblePurchases_JoinCompleto(t *testing.T) {
	sales, products, customers, methods := coleccionesBase()
	details := []*entity.SaleDetail{
		{ID: "d1", SaleID: "v1", ProductID: "p1", Quantity: intPtr(2), UnitPrice: decPtr(100)},
	}

	compras := stats.AssemblePurchases(sales, details, products, customers, methods)
	require.Len(t, compras, 1)

	c := compras[0]
	assert.Equal(t, "d1", c.ID)
	assert.Equal(t, 200.0, c.Total, "cantidad × precio_unitario")
	assert.Equal(t, "Efectivo", c.PaymentMethod)
	assert.Equal(t, "Catan", c.ProductName)
	assert.Equal(t, "Ana García", c.CustomerName)
	require.NotNil(t, c.Date)
	assert.Equal(t, "2024-03-15", c.Date.Format("2006-01-02"))
}

func TestAssemblePurchases_FallbackAlTotalDeLaVenta(t *testing.T) {
	// Renglón sin precio propio: el total del renglón es 0 y se usa el de la
	// cabecera.
	sales, products, customers, methods := coleccionesBase()
	details := []*entity.SaleDetail{
		{ID: "d1", SaleID: "v1", ProductID: "p1", Quantity: intPtr(3), UnitPrice: nil},
	}

	compras := stats.AssemblePurchases(sales, details, products, customers, methods)
	require.Len(t, compras, 1)
	assert.Equal(t, 500.0, compras[0].Total, "hereda total_venta de la cabecera")
}

func TestAssemblePurchases_ReferenciasRotasNoFallan(t *testing.T) {
	// El renglón apunta a una venta inexistente: fecha ausente, método y
	// cliente vacíos, total 0 (no hay cabecera de la cual heredar).
	details := []*entity.SaleDetail{
		{ID: "d1", SaleID: "v-fantasma", ProductID: "p-fantasma", Quantity: intPtr(1), UnitPrice: nil},
	}
	sales := []*entity.Sale{ventaBase()}

	compras := stats.AssemblePurchases(sales, details, nil, nil, nil)
	require.Len(t, compras, 1)

	c := compras[0]
	assert.Nil(t, c.Date)
	assert.Empty(t, c.PaymentMethod)
	assert.Empty(t, c.ProductName)
	assert.Empty(t, c.CustomerName)
	assert.Equal(t, 0.0, c.Total)
}

func TestAssemblePurchases_IDCompuestoCuandoFaltaElDelRenglon(t *testing.T) {
	sales, products, customers, methods := coleccionesBase()
	details := []*entity.SaleDetail{
		{ID: "", SaleID: "v1", ProductID: "p1", Quantity: intPtr(1), UnitPrice: decPtr(10)},
	}
	compras := stats.AssemblePurchases(sales, details, products, customers, methods)
	require.Len(t, compras, 1)
	assert.Equal(t, "v1-p1", compras[0].ID)
}

func TestAssemblePurchases_FuentesVacias(t *testing.T) {
	sales, products, customers, methods := coleccionesBase()
	details := []*entity.SaleDetail{
		{ID: "d1", SaleID: "v1", ProductID: "p1"},
	}

	assert.Empty(t, stats.AssemblePurchases(nil, details, products, customers, methods), "sin ventas")
	assert.Empty(t, stats.AssemblePurchases(sales, nil, products, customers, methods), "sin renglones")
}

func TestAssemblePurchases_OrdenDeRenglonesPreservado(t *testing.T) {
	sales, products, customers, methods := coleccionesBase()
	details := []*entity.SaleDetail{
		{ID: "d2", SaleID: "v1", ProductID: "p1", Quantity: intPtr(1), UnitPrice: decPtr(1)},
		{ID: "d1", SaleID: "v1", ProductID: "p1", Quantity: intPtr(1), UnitPrice: decPtr(2)},
		{ID: "d3", SaleID: "v1", ProductID: "p1", Quantity: intPtr(1), UnitPrice: decPtr(3)},
	}
	compras := stats.AssemblePurchases(sales, details, products, customers, methods)
	require.Len(t, compras, 3)
	assert.Equal(t, "d2", compras[0].ID)
	assert.Equal(t, "d1", compras[1].ID)
	assert.Equal(t, "d3", compras[2].ID)
}

func TestAssemblePurchases_EsDeterminista(t *testing.T) {
	sales, products, customers, methods := coleccionesBase()
	details := []*entity.SaleDetail{
		{ID: "d1", SaleID: "v1", ProductID: "p1", Quantity: intPtr(2), UnitPrice: decPtr(100)},
		{ID: "d2", SaleID: "v1", ProductID: "p1", Quantity: nil, UnitPrice: nil},
	}

	primera := stats.AssemblePurchases(sales, details, products, customers, methods)
	segunda := stats.AssemblePurchases(sales, details, products, customers, methods)
	assert.Equal(t, primera, segunda, "misma entrada, mismo resultado")
}
