package handler

type listQuery struct {
	Search string `query:"search" validate:"omitempty,max=200"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type createVenueRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Address     string   `json:"address" validate:"required,min=1,max=300"`
	Phone       string   `json:"phone" validate:"omitempty,max=50"`
	Website     string   `json:"website" validate:"omitempty,url"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Capacity    *int     `json:"capacity" validate:"omitnil,min=1"`
	Amenities   []string `json:"amenities" validate:"omitempty,max=50,dive,max=100"`
}

type updateVenueRequest struct {
	Name        *string   `json:"name" validate:"omitnil,min=1,max=200"`
	Address     *string   `json:"address" validate:"omitnil,min=1,max=300"`
	Phone       *string   `json:"phone" validate:"omitnil,max=50"`
	Website     *string   `json:"website" validate:"omitnil,omitempty,url"`
	Description *string   `json:"description" validate:"omitnil,max=5000"`
	Capacity    *int      `json:"capacity" validate:"omitnil,min=1"`
	Amenities   *[]string `json:"amenities" validate:"omitnil,max=50,dive,max=100"`
}
