package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ludoteca/ludoteca-api/internal/domain/stats"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estadísticos base. Los casos degenerados (vacío, un solo elemento, varianza
// nula) devuelven 0 por política explícita, nunca NaN ni pánico por división
// por cero.
// ──────────────────────────────────────────────────────────────────────────────

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, stats.Mean(nil), "secuencia ausente")
	assert.Equal(t, 0.0, stats.Mean([]float64{}), "secuencia vacía")
	assert.InDelta(t, 5.0, stats.Mean([]float64{4, 6}), 1e-12)
	assert.InDelta(t, -2.0, stats.Mean([]float64{-1, -2, -3}), 1e-12)
}

func TestStdDev_Poblacional(t *testing.T) {
	assert.Equal(t, 0.0, stats.StdDev(nil))
	assert.Equal(t, 0.0, stats.StdDev([]float64{5}), "un solo elemento no tiene dispersión")

	// Vector clásico: con divisor N el resultado es exactamente 2.0
	// (con N-1 daría ~2.138, lo que delataría una fórmula muestral).
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, stats.StdDev(xs), 1e-12)
}

func TestPearson_CasosDegenerados(t *testing.T) {
	assert.Equal(t, 0.0, stats.Pearson(nil, nil))
	assert.Equal(t, 0.0, stats.Pearson([]float64{}, []float64{}))
	assert.Equal(t, 0.0, stats.Pearson([]float64{1, 2, 3}, []float64{1, 2}), "longitudes distintas")
	assert.Equal(t, 0.0, stats.Pearson([]float64{1, 1, 1}, []float64{2, 3, 4}), "varianza nula en x anula el denominador")
	assert.Equal(t, 0.0, stats.Pearson([]float64{2, 3, 4}, []float64{7, 7, 7}), "varianza nula en y anula el denominador")
}

func TestPearson_CorrelacionPerfecta(t *testing.T) {
	assert.InDelta(t, 1.0, stats.Pearson([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-12)
	assert.InDelta(t, -1.0, stats.Pearson([]float64{1, 2, 3}, []float64{6, 4, 2}), 1e-12)
}

func TestPearson_EstaAcotado(t *testing.T) {
	xs := []float64{1, 5, 2, 8, 3}
	ys := []float64{2, 1, 9, 4, 7}
	r := stats.Pearson(xs, ys)
	assert.GreaterOrEqual(t, r, -1.0)
	assert.LessOrEqual(t, r, 1.0)
}
