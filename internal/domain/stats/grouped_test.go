package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludoteca/ludoteca-api/internal/domain/stats"
)

func compraSimple(metodo string, total float64) stats.Purchase {
	return stats.Purchase{PaymentMethod: metodo, Total: total}
}

func TestGroupSum_ClaveVaciaQuedaFuera(t *testing.T) {
	compras := []stats.Purchase{
		compraSimple("Efectivo", 100),
		compraSimple("", 999), // sin método: no debe entrar a ningún bucket
		compraSimple("Efectivo", 50),
		compraSimple("Credito", 30),
	}

	g := stats.GroupSum(compras, func(p stats.Purchase) string { return p.PaymentMethod })

	require.Equal(t, []string{"Efectivo", "Credito"}, g.Keys(), "orden de primera aparición")
	assert.Equal(t, 150.0, g.Value("Efectivo"))
	assert.Equal(t, 30.0, g.Value("Credito"))

	// El total excluido no aparece en ningún lado
	var suma float64
	for _, v := range g.Values() {
		suma += v
	}
	assert.Equal(t, 180.0, suma)
}

func TestGroupSum_TotalAusenteSumaCero(t *testing.T) {
	compras := []stats.Purchase{
		compraSimple("Debito", 0),
		compraSimple("Debito", 25),
	}
	g := stats.GroupSum(compras, func(p stats.Purchase) string { return p.PaymentMethod })
	assert.Equal(t, 25.0, g.Value("Debito"))
	assert.Equal(t, 1, g.Len())
}

func TestGroupAverage_PromedioPorClave(t *testing.T) {
	compras := []stats.Purchase{
		{ProductName: "Catan", Total: 10},
		{ProductName: "Catan", Total: 20},
		{ProductName: "Dixit", Total: 7},
	}

	g := stats.GroupAverage(compras,
		func(p stats.Purchase) string { return p.ProductName },
		func(p stats.Purchase) float64 { return p.Total },
	)

	assert.InDelta(t, 15.0, g.Value("Catan"), 1e-12, "promedio de 10 y 20")
	assert.InDelta(t, 7.0, g.Value("Dixit"), 1e-12)
	assert.Equal(t, []string{"Catan", "Dixit"}, g.Keys())
}

func TestGroupAverage_ClaveVaciaQuedaFuera(t *testing.T) {
	compras := []stats.Purchase{
		{ProductName: "", Total: 100},
	}
	g := stats.GroupAverage(compras,
		func(p stats.Purchase) string { return p.ProductName },
		func(p stats.Purchase) float64 { return p.Total },
	)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Values())
}
