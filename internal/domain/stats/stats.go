// Package stats implementa el motor de estadísticas de la tienda: el armado en
// memoria de las compras a partir de las cinco tablas crudas, los reductores de
// agrupación, y los estadísticos descriptivos (promedio, desvío estándar
// poblacional y correlación de Pearson) que alimentan el resumen y los
// gráficos. Todas las funciones son puras y totales: para cualquier entrada
// bien tipada devuelven un resultado, nunca un error; los casos degenerados
// (secuencias vacías, varianza nula) tienen política explícita de cero.
package stats

import "math"

// Mean promedio aritmético. Devuelve 0 para la secuencia vacía.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev desvío estándar poblacional (divisor N, no N-1).
// Devuelve 0 para secuencias de longitud menor o igual a 1.
func StdDev(xs []float64) float64 {
	if len(xs) <= 1 {
		return 0
	}
	m := Mean(xs)
	var acc float64
	for _, x := range xs {
		d := x - m
		acc += d * d
	}
	return math.Sqrt(acc / float64(len(xs)))
}

// Pearson coeficiente de correlación lineal en [-1, 1].
// Devuelve 0 si alguna secuencia está vacía, si las longitudes difieren o si
// el denominador es exactamente cero (alguna variable es constante).
func Pearson(xs, ys []float64) float64 {
	if len(xs) == 0 || len(ys) == 0 || len(xs) != len(ys) {
		return 0
	}

	meanX := Mean(xs)
	meanY := Mean(ys)

	var num, sumX, sumY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		num += dx * dy
		sumX += dx * dx
		sumY += dy * dy
	}

	denom := math.Sqrt(sumX * sumY)
	if denom == 0 {
		return 0
	}
	return num / denom
}
