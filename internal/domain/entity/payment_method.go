package entity

// PaymentMethod representa una forma de pago (tabla metodos_pago).
// Los nombres esperados por las estadísticas son Efectivo, Credito, Debito y Transferencia;
// cualquier otro nombre se trata como "otro" al codificar.
type PaymentMethod struct {
	ID   string
	Name string // nombre
}
