package dto

// CreatePaymentMethodRequest cuerpo de POST /api/metodos-pago.
type CreatePaymentMethodRequest struct {
	Nombre string `json:"nombre"`
}

// PaymentMethodResponse representación de un método de pago en respuestas.
type PaymentMethodResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
