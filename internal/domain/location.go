package domain

type Location struct {
	ID            int    `json:"id"`
	LocationName  string `json:"location_name"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	ActiveStatus  bool   `json:"active_status"`
	Notes         string `json:"notes,omitempty"`
}

type CreateLocationRequest struct {
	LocationName  string `json:"location_name" validate:"required,max=200"`
	Address       string `json:"address,omitempty" validate:"omitempty,max=255"`
	City          string `json:"city,omitempty" validate:"omitempty,max=100"`
	StateProvince string `json:"state_province,omitempty" validate:"omitempty,max=50"`
	PostalCode    string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Notes         string `json:"notes,omitempty"`
}

type UpdateLocationRequest struct {
	LocationName  *string `json:"location_name,omitempty" validate:"omitempty,max=200"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City          *string `json:"city,omitempty" validate:"omitempty,max=100"`
	StateProvince *string `json:"state_province,omitempty" validate:"omitempty,max=50"`
	PostalCode    *string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Notes         *string `json:"notes,omitempty"`
}

type LocationSearch struct {
	Name       string `json:"name,omitempty"`
	City       string `json:"city,omitempty"`
	ActiveOnly bool   `json:"active_only"`
}
