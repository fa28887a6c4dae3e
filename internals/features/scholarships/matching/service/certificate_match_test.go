package service

import (
	"testing"

	"github.com/google/uuid"
)

var (
	ieltsType = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	toeicType = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	satType   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func TestHasRequiredCertificates(t *testing.T) {
	held := []HeldCertificate{
		{TypeID: ieltsType, TypeName: "IELTS", Score: 6.5},
		{TypeID: toeicType, TypeName: "TOEIC", Score: 800},
	}

	tests := []struct {
		name     string
		held     []HeldCertificate
		required []uuid.UUID
		want     bool
	}{
		{"required kosong selalu true", nil, nil, true},
		{"required kosong walau held kosong", []HeldCertificate{}, []uuid.UUID{}, true},
		{"semua dipegang", held, []uuid.UUID{ieltsType, toeicType}, true},
		{"satu tidak dipegang", held, []uuid.UUID{ieltsType, satType}, false},
		{"held kosong dengan required isi", nil, []uuid.UUID{ieltsType}, false},
		{"jenis terhapus (uuid nil) tidak pernah match", held, []uuid.UUID{uuid.Nil}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRequiredCertificates(tt.held, tt.required); got != tt.want {
				t.Errorf("HasRequiredCertificates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesMinScores(t *testing.T) {
	held := []HeldCertificate{
		{TypeID: ieltsType, TypeName: "IELTS", Score: 6.5},
		{TypeID: toeicType, TypeName: "TOEIC", Score: 800},
	}

	tests := []struct {
		name  string
		held  []HeldCertificate
		rules []MinScoreRule
		want  bool
	}{
		{"rules kosong selalu true", held, nil, true},
		{
			"skor pas ambang lolos",
			held,
			[]MinScoreRule{{TypeID: ieltsType, TypeName: "IELTS", MinScore: 6.5}},
			true,
		},
		{
			"skor di bawah ambang gagal",
			held,
			[]MinScoreRule{{TypeID: ieltsType, TypeName: "IELTS", MinScore: 7.0}},
			false,
		},
		{
			// jenis yang tidak dipegang = kondisi GAGAL, bukan di-skip
			"jenis tidak dipegang gagal",
			held,
			[]MinScoreRule{{TypeID: satType, TypeName: "SAT", MinScore: 1200}},
			false,
		},
		{
			"satu gagal menggagalkan semua",
			held,
			[]MinScoreRule{
				{TypeID: ieltsType, TypeName: "IELTS", MinScore: 6.0},
				{TypeID: toeicType, TypeName: "TOEIC", MinScore: 900},
			},
			false,
		},
		{
			"jenis terhapus gagal tanpa error",
			held,
			[]MinScoreRule{{TypeID: uuid.Nil, MinScore: 1}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesMinScores(tt.held, tt.rules); got != tt.want {
				t.Errorf("MatchesMinScores() = %v, want %v", got, tt.want)
			}
		})
	}
}
