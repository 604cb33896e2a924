// Package statistics contiene el caso de uso de la página de estadísticas:
// orquesta las cinco lecturas, arma las compras en memoria y produce el
// resumen estadístico junto con las series para los gráficos.
package statistics

import (
	"context"
	"fmt"

	"github.com/ludoteca/ludoteca-api/internal/application/dto"
	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
	"github.com/ludoteca/ludoteca-api/internal/domain/stats"
)

// topJuegosN juegos que entran al ranking del gráfico de barras.
const topJuegosN = 5

// Etiquetas por defecto cuando la referencia no resolvió a un nombre.
const (
	labelSinDatos   = "Sin datos"
	labelSinJuego   = "Sin juego"
	labelSinCliente = "Sin cliente"
)

// UseCase genera las estadísticas de ventas del panel.
//
// Fuente de datos: StatisticsRepository (consultas read-only). El join y todos
// los cálculos ocurren en memoria sobre las cinco colecciones completas; no se
// agrega nada en SQL.
type UseCase struct {
	repo repository.StatisticsRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.StatisticsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// GetEstadisticas construye el EstadisticasDTO completo.
//
// Las cinco lecturas van en paralelo (llamadas independientes). Si cualquiera
// falla se devuelve el error sin intentar una agregación parcial: el handler
// lo loguea y responde el estado "sin datos". Si ventas o renglones vienen
// vacíos el resultado es SinDatos=true con resumen y series ausentes.
//
// El cálculo es idempotente: las mismas cinco colecciones producen siempre el
// mismo DTO.
func (uc *UseCase) GetEstadisticas(ctx context.Context) (*dto.EstadisticasDTO, error) {
	type salesResult struct {
		rows []*entity.Sale
		err  error
	}
	type detailsResult struct {
		rows []*entity.SaleDetail
		err  error
	}
	type productsResult struct {
		rows []*entity.Product
		err  error
	}
	type customersResult struct {
		rows []*entity.Customer
		err  error
	}
	type methodsResult struct {
		rows []*entity.PaymentMethod
		err  error
	}

	salesCh := make(chan salesResult, 1)
	detailsCh := make(chan detailsResult, 1)
	productsCh := make(chan productsResult, 1)
	customersCh := make(chan customersResult, 1)
	methodsCh := make(chan methodsResult, 1)

	go func() {
		rows, err := uc.repo.ListSales(ctx)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ListSaleDetails(ctx)
		detailsCh <- detailsResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ListProducts(ctx)
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ListCustomers(ctx)
		customersCh <- customersResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ListPaymentMethods(ctx)
		methodsCh <- methodsResult{rows, err}
	}()

	sales := <-salesCh
	details := <-detailsCh
	products := <-productsCh
	customers := <-customersCh
	methods := <-methodsCh

	if sales.err != nil {
		return nil, fmt.Errorf("estadisticas: ventas: %w", sales.err)
	}
	if details.err != nil {
		return nil, fmt.Errorf("estadisticas: renglones: %w", details.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("estadisticas: productos: %w", products.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("estadisticas: clientes: %w", customers.err)
	}
	if methods.err != nil {
		return nil, fmt.Errorf("estadisticas: métodos de pago: %w", methods.err)
	}

	// Sin ventas o sin renglones no hay nada que agregar; distinto de
	// "todavía no se consultó".
	if len(sales.rows) == 0 || len(details.rows) == 0 {
		return &dto.EstadisticasDTO{SinDatos: true}, nil
	}

	purchases := stats.AssemblePurchases(
		sales.rows, details.rows, products.rows, customers.rows, methods.rows,
	)
	if len(purchases) == 0 {
		return &dto.EstadisticasDTO{SinDatos: true}, nil
	}

	return &dto.EstadisticasDTO{
		SinDatos:              false,
		Resumen:               buildResumen(purchases),
		VentasPorMetodo:       buildVentasPorMetodo(purchases),
		MontoPorMes:           buildMontoPorMes(purchases),
		TopJuegos:             buildTopJuegos(purchases),
		PromedioPorDia:        buildPromedioPorDia(purchases),
		PromedioPorProducto:   buildPromedioPorProducto(purchases),
		PromedioPorCliente:    buildPromedioPorCliente(purchases),
		ScatterPrecioCantidad: buildScatterPrecioCantidad(purchases),
	}, nil
}

// buildResumen convierte el Summary del dominio en DTO.
func buildResumen(purchases []stats.Purchase) *dto.ResumenEstadisticoDTO {
	s := stats.NewSummary(purchases)
	if s == nil {
		return nil
	}
	return &dto.ResumenEstadisticoDTO{
		PromedioTotal:      s.PromedioTotal,
		DesvioTotal:        s.DesvioTotal,
		DesvioDiario:       s.DesvioDiario,
		DesvioSemanal:      s.DesvioSemanal,
		CorrPrecioCantidad: s.CorrPrecioCantidad,
		CorrCantidadDia:    s.CorrCantidadDia,
		CorrTotalMetodo:    s.CorrTotalMetodo,
		Totales:            s.Totales,
	}
}
