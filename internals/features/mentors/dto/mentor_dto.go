package dto

type CreateMentorRequestRequest struct {
	MentorID string  `json:"mentor_id" validate:"required,uuid"`
	Message  *string `json:"message" validate:"omitempty,max=2000"`
}

type AnswerMentorRequestRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected"`
	Answer *string `json:"answer" validate:"omitempty,max=2000"`
}

type UpsertMentorRatingRequest struct {
	MentorID string  `json:"mentor_id" validate:"required,uuid"`
	Value    int     `json:"value" validate:"required,min=1,max=5"`
	Comment  *string `json:"comment" validate:"omitempty,max=2000"`
}

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Body        string `json:"body" validate:"required,min=1,max=5000"`
}

// MentorListItem: entri direktori mentor publik + rata-rata rating.
type MentorListItem struct {
	ID              string   `json:"id"`
	UserName        string   `json:"user_name"`
	MentorBio       *string  `json:"mentor_bio,omitempty"`
	MentorExpertise *string  `json:"mentor_expertise,omitempty"`
	AverageRating   *float64 `json:"average_rating,omitempty"`
	RatingCount     int64    `json:"rating_count"`
}
