package dto

type CreateCertificateTypeRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	MaxScore    *float64 `json:"max_score" validate:"omitempty,gt=0"`
}

type UpdateCertificateTypeRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	MaxScore    *float64 `json:"max_score" validate:"omitempty,gt=0"`
}
