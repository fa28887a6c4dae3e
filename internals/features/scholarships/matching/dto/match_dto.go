package dto

// MatchProfileRequest: profil eksplisit untuk Variant profil-penuh.
// Semua field opsional; kalau semuanya kosong, profil tersimpan caller dipakai.
type MatchProfileRequest struct {
	Grades10     []GradeEntryRequest       `json:"grades_10" validate:"dive"`
	Grades11     []GradeEntryRequest       `json:"grades_11" validate:"dive"`
	Grades12     []GradeEntryRequest       `json:"grades_12" validate:"dive"`
	Certificates []HeldCertificateRequest  `json:"certificates" validate:"dive"`
}

type GradeEntryRequest struct {
	Subject string  `json:"subject" validate:"required,min=1,max=100"`
	Score   float64 `json:"score" validate:"gte=0,lte=10"`
}

type HeldCertificateRequest struct {
	CertificateTypeID string  `json:"certificate_type_id" validate:"required,uuid"`
	Score             float64 `json:"score" validate:"gte=0"`
}

func (r MatchProfileRequest) IsEmpty() bool {
	return len(r.Grades10) == 0 && len(r.Grades11) == 0 && len(r.Grades12) == 0 && len(r.Certificates) == 0
}
