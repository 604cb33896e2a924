package stats

// Grouped acumulado numérico por clave que conserva el orden de primera
// aparición. Las etiquetas de los gráficos salen en ese orden, así que un map
// pelado no alcanza.
type Grouped struct {
	keys   []string
	values map[string]float64
}

func newGrouped() *Grouped {
	return &Grouped{values: make(map[string]float64)}
}

func (g *Grouped) add(key string, delta float64) {
	if _, ok := g.values[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.values[key] += delta
}

// Keys devuelve las claves en orden de primera aparición.
func (g *Grouped) Keys() []string { return g.keys }

// Value devuelve el acumulado de una clave (0 si no existe).
func (g *Grouped) Value(key string) float64 { return g.values[key] }

// Values devuelve los acumulados en el mismo orden que Keys.
func (g *Grouped) Values() []float64 {
	out := make([]float64, 0, len(g.keys))
	for _, k := range g.keys {
		out = append(out, g.values[k])
	}
	return out
}

// Len cantidad de claves agrupadas.
func (g *Grouped) Len() int { return len(g.keys) }

// GroupSum suma el Total de cada compra agrupando por la clave del selector.
// Las compras cuya clave es vacía quedan fuera de todos los buckets; nunca se
// agrupan bajo una clave en blanco.
func GroupSum(purchases []Purchase, keyFn func(Purchase) string) *Grouped {
	g := newGrouped()
	for _, p := range purchases {
		key := keyFn(p)
		if key == "" {
			continue
		}
		g.add(key, p.Total)
	}
	return g
}

// GroupAverage promedio aritmético de valueFn por clave. Se acumulan suma y
// conteo por separado y la división se hace al final; una clave solo existe si
// al menos una compra la produjo, por lo que el conteo nunca es cero.
func GroupAverage(purchases []Purchase, keyFn func(Purchase) string, valueFn func(Purchase) float64) *Grouped {
	sums := newGrouped()
	counts := make(map[string]float64)
	for _, p := range purchases {
		key := keyFn(p)
		if key == "" {
			continue
		}
		sums.add(key, valueFn(p))
		counts[key]++
	}

	out := newGrouped()
	for _, k := range sums.Keys() {
		out.add(k, sums.Value(k)/counts[k])
	}
	return out
}
