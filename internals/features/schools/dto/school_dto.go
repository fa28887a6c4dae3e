package dto

type CreateSchoolRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Location    string  `json:"location" validate:"max=255"`
	Website     *string `json:"website" validate:"omitempty,url,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

type UpdateSchoolRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	Website     *string `json:"website" validate:"omitempty,url,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}
