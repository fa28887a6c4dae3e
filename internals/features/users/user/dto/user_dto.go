package dto

import (
	"time"

	"github.com/google/uuid"

	"beasiswaku_backend/internals/features/users/user/model"
)

// ========== REQUEST ==========

type GradeEntryRequest struct {
	Subject string  `json:"subject" validate:"required,min=1,max=100"`
	Score   float64 `json:"score" validate:"gte=0,lte=10"`
}

// UpdateGradesRequest mengganti seluruh rapor (bukan merge per-mapel)
type UpdateGradesRequest struct {
	Grades10 []GradeEntryRequest `json:"grades_10" validate:"dive"`
	Grades11 []GradeEntryRequest `json:"grades_11" validate:"dive"`
	Grades12 []GradeEntryRequest `json:"grades_12" validate:"dive"`
}

type UpdateProfileRequest struct {
	UserName        *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	MentorBio       *string `json:"mentor_bio" validate:"omitempty,max=2000"`
	MentorExpertise *string `json:"mentor_expertise" validate:"omitempty,max=255"`
}

// ========== RESPONSE ==========

type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserName     string     `json:"user_name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToUserResponse(u model.UserModel) UserResponse {
	return UserResponse{
		ID:           u.ID,
		UserName:     u.UserName,
		Email:        u.Email,
		Role:         u.Role,
		IsPremium:    u.IsPremium,
		PremiumUntil: u.PremiumUntil,
		CreatedAt:    u.CreatedAt,
	}
}

func (r GradeEntryRequest) ToModel() model.GradeEntry {
	return model.GradeEntry{Subject: r.Subject, Score: r.Score}
}

func ToGradeEntries(in []GradeEntryRequest) []model.GradeEntry {
	out := make([]model.GradeEntry, 0, len(in))
	for _, g := range in {
		out = append(out, g.ToModel())
	}
	return out
}
