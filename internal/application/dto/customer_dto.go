package dto

// CreateCustomerRequest cuerpo de POST /api/clientes.
// El formulario original exige los cuatro campos.
type CreateCustomerRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Edad     int    `json:"edad"`
}

// UpdateCustomerRequest cuerpo de PUT /api/clientes/:id.
type UpdateCustomerRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Edad     int    `json:"edad"`
}

// CustomerResponse representación de un cliente en respuestas.
type CustomerResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Edad     int    `json:"edad"`
}
