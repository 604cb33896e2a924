package dto

// ── Series para gráficos ──────────────────────────────────────────────────────

// ChartDatasetDTO un dataset de un gráfico de barras/líneas/doughnut.
type ChartDatasetDTO struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// ChartSeriesDTO serie etiquetada lista para la capa de presentación.
// El orden de Labels es significativo y coincide posición a posición con Data
// de cada dataset.
type ChartSeriesDTO struct {
	Labels   []string          `json:"labels"`
	Datasets []ChartDatasetDTO `json:"datasets"`
}

// ScatterPointDTO un punto {x, y} del gráfico de dispersión.
type ScatterPointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterSeriesDTO serie de dispersión: un punto por compra, sin etiquetas.
type ScatterSeriesDTO struct {
	Datasets []ScatterDatasetDTO `json:"datasets"`
}

// ScatterDatasetDTO dataset del scatter.
type ScatterDatasetDTO struct {
	Label string            `json:"label"`
	Data  []ScatterPointDTO `json:"data"`
}

// ── Resumen estadístico ───────────────────────────────────────────────────────

// ResumenEstadisticoDTO métricas escalares calculadas sobre todo el historial
// de compras, más los totales crudos con los que se calcularon.
type ResumenEstadisticoDTO struct {
	PromedioTotal      float64   `json:"promedio_total"`
	DesvioTotal        float64   `json:"desvio_total"`
	DesvioDiario       float64   `json:"desvio_diario"`
	DesvioSemanal      float64   `json:"desvio_semanal"`
	CorrPrecioCantidad float64   `json:"corr_precio_cantidad"`
	CorrCantidadDia    float64   `json:"corr_cantidad_dia"`
	CorrTotalMetodo    float64   `json:"corr_total_metodo"`
	Totales            []float64 `json:"totales"`
}

// ── Respuesta completa ────────────────────────────────────────────────────────

// EstadisticasDTO respuesta de GET /api/estadisticas.
//
// SinDatos es true cuando alguna de las cinco lecturas falló o cuando ventas o
// renglones vinieron vacíos; en ese caso el resumen y todas las series quedan
// ausentes (nil, omitidos del JSON), que no es lo mismo que series con ceros.
type EstadisticasDTO struct {
	SinDatos bool `json:"sin_datos"`

	Resumen *ResumenEstadisticoDTO `json:"resumen,omitempty"`

	// Gráficos básicos
	VentasPorMetodo *ChartSeriesDTO `json:"ventas_por_metodo,omitempty"` // doughnut
	MontoPorMes     *ChartSeriesDTO `json:"monto_por_mes,omitempty"`     // bar, meses ascendentes
	TopJuegos       *ChartSeriesDTO `json:"top_juegos,omitempty"`        // bar, top 5 descendente

	// Gráficos avanzados
	PromedioPorDia        *ChartSeriesDTO   `json:"promedio_por_dia,omitempty"`
	PromedioPorProducto   *ChartSeriesDTO   `json:"promedio_por_producto,omitempty"`
	PromedioPorCliente    *ChartSeriesDTO   `json:"promedio_por_cliente,omitempty"`
	ScatterPrecioCantidad *ScatterSeriesDTO `json:"scatter_precio_cantidad,omitempty"`
}
