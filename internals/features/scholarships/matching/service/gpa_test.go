package service

import (
	"math"
	"testing"

	userModel "beasiswaku_backend/internals/features/users/user/model"
)

func grades(scores ...float64) []userModel.GradeEntry {
	out := make([]userModel.GradeEntry, 0, len(scores))
	for _, s := range scores {
		out = append(out, userModel.GradeEntry{Subject: "Matematika", Score: s})
	}
	return out
}

func TestCalculateGPA(t *testing.T) {
	tests := []struct {
		name          string
		g10, g11, g12 []userModel.GradeEntry
		want          float64
		wantNil       bool
	}{
		{
			name: "tiga tahun terisi",
			g10:  grades(8), g11: grades(9), g12: grades(10),
			want: 9,
		},
		{
			name: "satu tahun saja",
			g11:  grades(7, 8),
			want: 7.5,
		},
		{
			name: "jumlah mapel beda per tahun",
			g10:  grades(6, 7, 8), g12: grades(10),
			want: 7.75,
		},
		{
			name: "mapel duplikat ikut dihitung dua kali",
			g10: []userModel.GradeEntry{
				{Subject: "Fisika", Score: 6},
				{Subject: "Fisika", Score: 10},
			},
			want: 8,
		},
		{
			name:    "semua kosong pakai sentinel nil",
			wantNil: true,
		},
		{
			name: "nilai nol bukan sentinel",
			g10:  grades(0, 0),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGPA(tt.g10, tt.g11, tt.g12)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("CalculateGPA() = %v, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("CalculateGPA() = nil, want %v", tt.want)
			}
			if math.Abs(*got-tt.want) > 1e-9 {
				t.Errorf("CalculateGPA() = %v, want %v", *got, tt.want)
			}
		})
	}
}
