package statistics

import (
	"sort"

	"github.com/ludoteca/ludoteca-api/internal/application/dto"
	"github.com/ludoteca/ludoteca-api/internal/domain/stats"
)

// Constructores de series: cada uno transforma un agrupado en una serie lista
// para graficar. Ninguno muta las compras ni el agrupado; cada llamada produce
// una serie nueva.

// buildVentasPorMetodo total vendido por método de pago (doughnut).
// Las compras sin método resuelto aparecen bajo "Sin datos".
func buildVentasPorMetodo(purchases []stats.Purchase) *dto.ChartSeriesDTO {
	g := stats.GroupSum(purchases, func(p stats.Purchase) string {
		if p.PaymentMethod == "" {
			return labelSinDatos
		}
		return p.PaymentMethod
	})
	return &dto.ChartSeriesDTO{
		Labels: g.Keys(),
		Datasets: []dto.ChartDatasetDTO{
			{Label: "Total vendido", Data: g.Values()},
		},
	}
}

// buildMontoPorMes ingresos por mes (bar). Las claves "{año}-{mes}" se ordenan
// lexicográficamente, que para ese formato equivale al orden cronológico.
// Las compras sin fecha quedan fuera.
func buildMontoPorMes(purchases []stats.Purchase) *dto.ChartSeriesDTO {
	g := stats.GroupSum(purchases, stats.MonthKey)

	meses := append([]string(nil), g.Keys()...)
	sort.Strings(meses)

	data := make([]float64, 0, len(meses))
	for _, m := range meses {
		data = append(data, g.Value(m))
	}
	return &dto.ChartSeriesDTO{
		Labels: meses,
		Datasets: []dto.ChartDatasetDTO{
			{Label: "Ingresos por mes", Data: data},
		},
	}
}

// buildTopJuegos los topJuegosN juegos con mayor facturación, en orden
// descendente. El sort es estable: los empates conservan el orden de primera
// aparición del agrupado.
func buildTopJuegos(purchases []stats.Purchase) *dto.ChartSeriesDTO {
	g := stats.GroupSum(purchases, func(p stats.Purchase) string {
		if p.ProductName == "" {
			return labelSinJuego
		}
		return p.ProductName
	})

	juegos := append([]string(nil), g.Keys()...)
	sort.SliceStable(juegos, func(i, j int) bool {
		return g.Value(juegos[i]) > g.Value(juegos[j])
	})
	if len(juegos) > topJuegosN {
		juegos = juegos[:topJuegosN]
	}

	data := make([]float64, 0, len(juegos))
	for _, j := range juegos {
		data = append(data, g.Value(j))
	}
	return &dto.ChartSeriesDTO{
		Labels: juegos,
		Datasets: []dto.ChartDatasetDTO{
			{Label: "Total vendido", Data: data},
		},
	}
}

// buildPromedioPorDia promedio del total por día calendario (line).
func buildPromedioPorDia(purchases []stats.Purchase) *dto.ChartSeriesDTO {
	g := stats.GroupAverage(purchases, stats.DateKey, total)
	return &dto.ChartSeriesDTO{
		Labels: g.Keys(),
		Datasets: []dto.ChartDatasetDTO{
			{Label: "Promedio de ventas por día", Data: g.Values()},
		},
	}
}

// buildPromedioPorProducto promedio del total por juego (bar).
func buildPromedioPorProducto(purchases []stats.Purchase) *dto.ChartSeriesDTO {
	g := stats.GroupAverage(purchases, func(p stats.Purchase) string {
		if p.ProductName == "" {
			return labelSinJuego
		}
		return p.ProductName
	}, total)
	return &dto.ChartSeriesDTO{
		Labels: g.Keys(),
		Datasets: []dto.ChartDatasetDTO{
			{Label: "Promedio de ventas por producto", Data: g.Values()},
		},
	}
}

// buildPromedioPorCliente promedio del total por cliente (bar).
func buildPromedioPorCliente(purchases []stats.Purchase) *dto.ChartSeriesDTO {
	g := stats.GroupAverage(purchases, func(p stats.Purchase) string {
		if p.CustomerName == "" {
			return labelSinCliente
		}
		return p.CustomerName
	}, total)
	return &dto.ChartSeriesDTO{
		Labels: g.Keys(),
		Datasets: []dto.ChartDatasetDTO{
			{Label: "Promedio de ventas por cliente", Data: g.Values()},
		},
	}
}

// buildScatterPrecioCantidad un punto por compra: x = precio unitario efectivo
// (0 si la cantidad falta o es cero), y = cantidad (0 si falta).
func buildScatterPrecioCantidad(purchases []stats.Purchase) *dto.ScatterSeriesDTO {
	points := make([]dto.ScatterPointDTO, 0, len(purchases))
	for _, p := range purchases {
		points = append(points, dto.ScatterPointDTO{
			X: stats.EffectiveUnitPrice(p),
			Y: stats.QuantityOrZero(p),
		})
	}
	return &dto.ScatterSeriesDTO{
		Datasets: []dto.ScatterDatasetDTO{
			{Label: "Precio vs cantidad", Data: points},
		},
	}
}

func total(p stats.Purchase) float64 { return p.Total }
