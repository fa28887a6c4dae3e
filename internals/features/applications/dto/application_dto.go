package dto

type ApplicationDocument struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
	URL  string `json:"url" validate:"required,url"`
}

type SubmitApplicationRequest struct {
	ScholarshipID string                `json:"scholarship_id" validate:"required,uuid"`
	Essay         *string               `json:"essay" validate:"omitempty,max=20000"`
	Documents     []ApplicationDocument `json:"documents" validate:"dive"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected cancelled"`
}
