package statistics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludoteca/ludoteca-api/internal/application/statistics"
	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio: colecciones en memoria con errores inyectables
// ──────────────────────────────────────────────────────────────────────────────

type fakeStatsRepo struct {
	sales     []*entity.Sale
	details   []*entity.SaleDetail
	products  []*entity.Product
	customers []*entity.Customer
	methods   []*entity.PaymentMethod

	errSales   error
	errDetails error
}

func (f *fakeStatsRepo) ListSales(context.Context) ([]*entity.Sale, error) {
	return f.sales, f.errSales
}
func (f *fakeStatsRepo) ListSaleDetails(context.Context) ([]*entity.SaleDetail, error) {
	return f.details, f.errDetails
}
func (f *fakeStatsRepo) ListProducts(context.Context) ([]*entity.Product, error) {
	return f.products, nil
}
func (f *fakeStatsRepo) ListCustomers(context.Context) ([]*entity.Customer, error) {
	return f.customers, nil
}
func (f *fakeStatsRepo) ListPaymentMethods(context.Context) ([]*entity.PaymentMethod, error) {
	return f.methods, nil
}

func fechaPtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// repoDosVentas dos ventas de un renglón cada una: $100 en Efectivo el
// 2024-01-01 y $300 en Credito el 2024-01-08 (semanas W1 y W2).
func repoDosVentas() *fakeStatsRepo {
	return &fakeStatsRepo{
		sales: []*entity.Sale{
			{ID: "v1", Date: fechaPtr(2024, time.January, 1), CustomerID: strPtr("c1"), PaymentMethodID: strPtr("m1"), Total: decimal.NewFromInt(100)},
			{ID: "v2", Date: fechaPtr(2024, time.January, 8), CustomerID: strPtr("c2"), PaymentMethodID: strPtr("m2"), Total: decimal.NewFromInt(300)},
		},
		details: []*entity.SaleDetail{
			{ID: "d1", SaleID: "v1", ProductID: "p1", Quantity: intPtr(1), UnitPrice: decPtr(100)},
			{ID: "d2", SaleID: "v2", ProductID: "p2", Quantity: intPtr(1), UnitPrice: decPtr(300)},
		},
		products: []*entity.Product{
			{ID: "p1", Name: "Catan"},
			{ID: "p2", Name: "Carcassonne"},
		},
		customers: []*entity.Customer{
			{ID: "c1", FirstName: "Ana", LastName: "García"},
			{ID: "c2", FirstName: "Bruno", LastName: "Díaz"},
		},
		methods: []*entity.PaymentMethod{
			{ID: "m1", Name: "Efectivo"},
			{ID: "m2", Name: "Credito"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pipeline completo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetEstadisticas_PipelineCompleto(t *testing.T) {
	uc := statistics.NewUseCase(repoDosVentas())

	out, err := uc.GetEstadisticas(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.SinDatos)

	// Ventas por método en orden de aparición
	require.NotNil(t, out.VentasPorMetodo)
	assert.Equal(t, []string{"Efectivo", "Credito"}, out.VentasPorMetodo.Labels)
	require.Len(t, out.VentasPorMetodo.Datasets, 1)
	assert.Equal(t, []float64{100, 300}, out.VentasPorMetodo.Datasets[0].Data)

	// Buckets semanales {2024-W1: 100, 2024-W2: 300} → desvío poblacional 100
	require.NotNil(t, out.Resumen)
	assert.InDelta(t, 100.0, out.Resumen.DesvioSemanal, 1e-9)
	assert.InDelta(t, 200.0, out.Resumen.PromedioTotal, 1e-9)
	assert.Equal(t, []float64{100, 300}, out.Resumen.Totales)

	// Ambas ventas caen en enero
	require.NotNil(t, out.MontoPorMes)
	assert.Equal(t, []string{"2024-01"}, out.MontoPorMes.Labels)
	assert.Equal(t, []float64{400}, out.MontoPorMes.Datasets[0].Data)

	// Promedios por cliente con nombre resuelto
	require.NotNil(t, out.PromedioPorCliente)
	assert.Equal(t, []string{"Ana García", "Bruno Díaz"}, out.PromedioPorCliente.Labels)

	// Un punto del scatter por compra
	require.NotNil(t, out.ScatterPrecioCantidad)
	require.Len(t, out.ScatterPrecioCantidad.Datasets, 1)
	puntos := out.ScatterPrecioCantidad.Datasets[0].Data
	require.Len(t, puntos, 2)
	assert.Equal(t, 100.0, puntos[0].X)
	assert.Equal(t, 1.0, puntos[0].Y)
}

func TestGetEstadisticas_TopJuegosDescendenteYTruncado(t *testing.T) {
	// Seis juegos con sumas {A:50, B:200, C:10, D:80, E:5, F:300}:
	// el ranking debe ser [F, B, D, A, C], estrictamente descendente y de a lo
	// sumo cinco etiquetas.
	repo := repoDosVentas()
	repo.products = []*entity.Product{
		{ID: "pA", Name: "A"}, {ID: "pB", Name: "B"}, {ID: "pC", Name: "C"},
		{ID: "pD", Name: "D"}, {ID: "pE", Name: "E"}, {ID: "pF", Name: "F"},
	}
	repo.details = []*entity.SaleDetail{
		{ID: "d1", SaleID: "v1", ProductID: "pA", Quantity: intPtr(1), UnitPrice: decPtr(50)},
		{ID: "d2", SaleID: "v1", ProductID: "pB", Quantity: intPtr(1), UnitPrice: decPtr(200)},
		{ID: "d3", SaleID: "v1", ProductID: "pC", Quantity: intPtr(1), UnitPrice: decPtr(10)},
		{ID: "d4", SaleID: "v2", ProductID: "pD", Quantity: intPtr(1), UnitPrice: decPtr(80)},
		{ID: "d5", SaleID: "v2", ProductID: "pE", Quantity: intPtr(1), UnitPrice: decPtr(5)},
		{ID: "d6", SaleID: "v2", ProductID: "pF", Quantity: intPtr(1), UnitPrice: decPtr(300)},
	}

	uc := statistics.NewUseCase(repo)
	out, err := uc.GetEstadisticas(context.Background())
	require.NoError(t, err)

	require.NotNil(t, out.TopJuegos)
	assert.Equal(t, []string{"F", "B", "D", "A", "C"}, out.TopJuegos.Labels)
	data := out.TopJuegos.Datasets[0].Data
	require.Len(t, data, 5)
	for i := 1; i < len(data); i++ {
		assert.Greater(t, data[i-1], data[i], "orden estrictamente descendente")
	}
}

func TestGetEstadisticas_SinVentasEsSinDatos(t *testing.T) {
	repo := repoDosVentas()
	repo.sales = nil

	uc := statistics.NewUseCase(repo)
	out, err := uc.GetEstadisticas(context.Background())
	require.NoError(t, err)

	assert.True(t, out.SinDatos)
	assert.Nil(t, out.Resumen, "sin datos: resumen ausente, no en cero")
	assert.Nil(t, out.VentasPorMetodo)
	assert.Nil(t, out.TopJuegos)
	assert.Nil(t, out.ScatterPrecioCantidad)
}

func TestGetEstadisticas_SinRenglonesEsSinDatos(t *testing.T) {
	repo := repoDosVentas()
	repo.details = []*entity.SaleDetail{}

	uc := statistics.NewUseCase(repo)
	out, err := uc.GetEstadisticas(context.Background())
	require.NoError(t, err)
	assert.True(t, out.SinDatos)
	assert.Nil(t, out.Resumen)
}

func TestGetEstadisticas_ErrorDeLecturaCortaElPipeline(t *testing.T) {
	repo := repoDosVentas()
	repo.errSales = errors.New("conexión rechazada")

	uc := statistics.NewUseCase(repo)
	out, err := uc.GetEstadisticas(context.Background())

	require.Error(t, err, "una lectura fallida no produce agregación parcial")
	assert.Nil(t, out)
}

func TestGetEstadisticas_EsIdempotente(t *testing.T) {
	uc := statistics.NewUseCase(repoDosVentas())

	primera, err1 := uc.GetEstadisticas(context.Background())
	segunda, err2 := uc.GetEstadisticas(context.Background())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, primera, segunda, "mismas colecciones, mismo resultado")
}

func TestGetEstadisticas_MetodoSinResolverVaASinDatos(t *testing.T) {
	repo := repoDosVentas()
	// La venta v2 apunta a un método inexistente
	repo.sales[1].PaymentMethodID = strPtr("m-fantasma")

	uc := statistics.NewUseCase(repo)
	out, err := uc.GetEstadisticas(context.Background())
	require.NoError(t, err)

	require.NotNil(t, out.VentasPorMetodo)
	assert.Equal(t, []string{"Efectivo", "Sin datos"}, out.VentasPorMetodo.Labels)
}
