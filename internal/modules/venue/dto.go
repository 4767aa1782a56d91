package venue

type CreateVenueRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Address  string `json:"address" validate:"required"`
}

type UpdateVenueRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0"`
	Address  *string `json:"address"`
}
