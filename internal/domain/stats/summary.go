package stats

import (
	"fmt"
	"time"
)

// Códigos ordinales de los métodos de pago conocidos. Solo distinguen
// categorías para la correlación total↔método; la magnitud del código no
// significa nada.
var methodCodes = map[string]float64{
	"Efectivo":      0,
	"Credito":       1,
	"Debito":        2,
	"Transferencia": 3,
}

// methodCodeOther agrupa cualquier método no reconocido, incluido el vacío.
const methodCodeOther = 4

// MethodCode codifica el nombre del método de pago como ordinal.
func MethodCode(name string) float64 {
	if c, ok := methodCodes[name]; ok {
		return c
	}
	return methodCodeOther
}

// DayOfWeekCode día de la semana de la compra: 0 (domingo) a 6 (sábado).
// Las compras sin fecha devuelven 0, indistinguible de un domingo.
func DayOfWeekCode(p Purchase) float64 {
	if p.Date == nil {
		return 0
	}
	return float64(p.Date.Weekday())
}

// WeekKey clave de semana "{año}-W{n}", con n = ceil(díaDelAño / 7).
// No es la semana ISO-8601: la semana 1 siempre arranca el 1 de enero.
func WeekKey(t time.Time) string {
	week := (t.YearDay() + 6) / 7
	return fmt.Sprintf("%d-W%d", t.Year(), week)
}

// DateKey porción de fecha ISO (YYYY-MM-DD); "" si la compra no tiene fecha,
// lo que la excluye de cualquier agrupación por fecha.
func DateKey(p Purchase) string {
	if p.Date == nil {
		return ""
	}
	return p.Date.Format("2006-01-02")
}

// MonthKey clave "{año}-{mes de dos dígitos}"; el orden lexicográfico coincide
// con el cronológico. "" si la compra no tiene fecha.
func MonthKey(p Purchase) string {
	if p.Date == nil {
		return ""
	}
	return fmt.Sprintf("%d-%02d", p.Date.Year(), int(p.Date.Month()))
}

// EffectiveUnitPrice precio unitario efectivo de la compra: el precio del
// renglón si está presente; si no, Total/Cantidad; 0 si la cantidad falta o
// es cero.
func EffectiveUnitPrice(p Purchase) float64 {
	if p.UnitPrice != nil {
		return *p.UnitPrice
	}
	if p.Quantity == nil || *p.Quantity == 0 {
		return 0
	}
	return p.Total / *p.Quantity
}

// QuantityOrZero cantidad de la compra, 0 si falta.
func QuantityOrZero(p Purchase) float64 {
	if p.Quantity == nil {
		return 0
	}
	return *p.Quantity
}

// Summary resumen estadístico de todo el historial de compras.
type Summary struct {
	PromedioTotal      float64   // promedio del total por compra
	DesvioTotal        float64   // desvío estándar del total por compra
	DesvioDiario       float64   // desvío estándar de las sumas por día calendario
	DesvioSemanal      float64   // desvío estándar de las sumas por semana
	CorrPrecioCantidad float64   // precio unitario efectivo ↔ cantidad
	CorrCantidadDia    float64   // cantidad ↔ día de la semana
	CorrTotalMetodo    float64   // total ↔ código de método de pago
	Totales            []float64 // totales por compra usados para los cálculos
}

// NewSummary calcula el resumen sobre la secuencia completa de compras.
// Devuelve nil cuando no hay compras: "sin datos" no es lo mismo que un
// resumen lleno de ceros, y los llamadores distinguen ambos casos.
func NewSummary(purchases []Purchase) *Summary {
	if len(purchases) == 0 {
		return nil
	}

	totales := make([]float64, len(purchases))
	cantidades := make([]float64, len(purchases))
	precios := make([]float64, len(purchases))
	dias := make([]float64, len(purchases))
	metodos := make([]float64, len(purchases))
	for i, p := range purchases {
		totales[i] = p.Total
		cantidades[i] = QuantityOrZero(p)
		precios[i] = EffectiveUnitPrice(p)
		dias[i] = DayOfWeekCode(p)
		metodos[i] = MethodCode(p.PaymentMethod)
	}

	porDia := GroupSum(purchases, DateKey)
	porSemana := GroupSum(purchases, func(p Purchase) string {
		if p.Date == nil {
			return ""
		}
		return WeekKey(*p.Date)
	})

	return &Summary{
		PromedioTotal: Mean(totales),
		DesvioTotal:   StdDev(totales),
		// StdDev ya devuelve 0 con menos de dos buckets
		DesvioDiario:       StdDev(porDia.Values()),
		DesvioSemanal:      StdDev(porSemana.Values()),
		CorrPrecioCantidad: Pearson(precios, cantidades),
		CorrCantidadDia:    Pearson(cantidades, dias),
		CorrTotalMetodo:    Pearson(totales, metodos),
		Totales:            totales,
	}
}
