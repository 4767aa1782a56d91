package tickettype

type CreateTicketTypeRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

type UpdateTicketTypeRequest struct {
	Name  *string  `json:"name" validate:"omitempty,max=100"`
	Price *float64 `json:"price" validate:"omitempty,gt=0"`
}
