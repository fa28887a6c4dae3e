package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// Premium (VIP) membuka submit aplikasi, koneksi mentor, dan blog
	IsPremium    bool       `gorm:"not null;default:false" json:"is_premium"`
	PremiumUntil *time.Time `gorm:"column:premium_until" json:"premium_until,omitempty"`

	// Khusus role mentor
	MentorBio       *string `gorm:"type:text" json:"mentor_bio,omitempty"`
	MentorExpertise *string `gorm:"size:255" json:"mentor_expertise,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "user"
	}
}

// HasActivePremium: premium aktif kalau flag nyala dan belum lewat masa berlaku.
func (u *UserModel) HasActivePremium() bool {
	if !u.IsPremium {
		return false
	}
	if u.PremiumUntil == nil {
		return true
	}
	return time.Now().Before(*u.PremiumUntil)
}
