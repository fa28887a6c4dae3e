package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GradeEntry adalah satu pasangan mapel-nilai pada rapor.
// Subject sengaja tidak di-uniq-kan; kalau mapel muncul dua kali,
// dua-duanya ikut dihitung.
type GradeEntry struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
}

// StudentProfileModel menyimpan rapor tiga tahun milik siswa.
// Nilai disimpan sebagai array JSONB per tahun, urutan input dipertahankan.
type StudentProfileModel struct {
	StudentProfileID     uuid.UUID      `gorm:"column:student_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_profile_id"`
	StudentProfileUserID uuid.UUID      `gorm:"column:student_profile_user_id;type:uuid;uniqueIndex;not null" json:"student_profile_user_id"`
	Grades10             datatypes.JSON `gorm:"column:student_profile_grades_10;type:jsonb;not null;default:'[]'" json:"grades_10"`
	Grades11             datatypes.JSON `gorm:"column:student_profile_grades_11;type:jsonb;not null;default:'[]'" json:"grades_11"`
	Grades12             datatypes.JSON `gorm:"column:student_profile_grades_12;type:jsonb;not null;default:'[]'" json:"grades_12"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

// GradeYears membongkar ketiga kolom JSONB menjadi slice GradeEntry.
// Kolom kosong / null dianggap array kosong, bukan error.
func (p *StudentProfileModel) GradeYears() (g10, g11, g12 []GradeEntry, err error) {
	if g10, err = decodeGrades(p.Grades10); err != nil {
		return nil, nil, nil, err
	}
	if g11, err = decodeGrades(p.Grades11); err != nil {
		return nil, nil, nil, err
	}
	if g12, err = decodeGrades(p.Grades12); err != nil {
		return nil, nil, nil, err
	}
	return g10, g11, g12, nil
}

func decodeGrades(raw datatypes.JSON) ([]GradeEntry, error) {
	if len(raw) == 0 {
		return []GradeEntry{}, nil
	}
	var out []GradeEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []GradeEntry{}
	}
	return out, nil
}

// EncodeGrades untuk menulis balik slice ke kolom JSONB.
func EncodeGrades(entries []GradeEntry) (datatypes.JSON, error) {
	if entries == nil {
		entries = []GradeEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
