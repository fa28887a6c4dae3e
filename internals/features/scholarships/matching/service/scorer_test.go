package service

import (
	"testing"

	"github.com/google/uuid"

	userModel "beasiswaku_backend/internals/features/users/user/model"
)

func f64(v float64) *float64 { return &v }

// Profil acuan: Math 8/9/10 → GPA 9, tanpa sertifikat.
func mathProfile() CandidateProfile {
	return CandidateProfile{
		Grades10: []userModel.GradeEntry{{Subject: "Math", Score: 8}},
		Grades11: []userModel.GradeEntry{{Subject: "Math", Score: 9}},
		Grades12: []userModel.GradeEntry{{Subject: "Math", Score: 10}},
	}
}

func TestScoreRequirement(t *testing.T) {
	withCerts := mathProfile()
	withCerts.Certificates = []HeldCertificate{
		{TypeID: ieltsType, TypeName: "IELTS", Score: 6.5},
	}

	tests := []struct {
		name    string
		profile CandidateProfile
		rule    RequirementRule
		want    int
	}{
		{
			// requirement tanpa syarat apa pun = semua orang layak
			"nol kondisi selalu 100",
			CandidateProfile{},
			RequirementRule{},
			100,
		},
		{
			"gpa terpenuhi 1/1",
			mathProfile(),
			RequirementRule{MinGPA: f64(8.5)},
			100,
		},
		{
			"gpa tidak terpenuhi 0/1",
			mathProfile(),
			RequirementRule{MinGPA: f64(9.5)},
			0,
		},
		{
			"tanpa rapor gpa gagal (sentinel bukan nol)",
			CandidateProfile{},
			RequirementRule{MinGPA: f64(0)},
			0,
		},
		{
			// banyak sertifikat wajib tetap SATU kondisi
			"sertifikat wajib dibundel satu kondisi",
			withCerts,
			RequirementRule{
				RequiredCertTypeIDs: []uuid.UUID{ieltsType, toeicType, satType},
			},
			0,
		},
		{
			"satu dari tiga kondisi = 33",
			mathProfile(),
			RequirementRule{
				MinGPA:              f64(8.5),
				RequiredCertTypeIDs: []uuid.UUID{ieltsType},
				MinScores:           []MinScoreRule{{TypeID: toeicType, TypeName: "TOEIC", MinScore: 700}},
			},
			33,
		},
		{
			"satu dari dua kondisi = 50",
			mathProfile(),
			RequirementRule{
				MinGPA:              f64(8.5),
				RequiredCertTypeIDs: []uuid.UUID{ieltsType},
			},
			50,
		},
		{
			"dua dari tiga kondisi = 67",
			withCerts,
			RequirementRule{
				MinGPA:              f64(8.5),
				RequiredCertTypeIDs: []uuid.UUID{ieltsType},
				MinScores:           []MinScoreRule{{TypeID: toeicType, TypeName: "TOEIC", MinScore: 700}},
			},
			67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreRequirement(tt.profile, tt.rule); got != tt.want {
				t.Errorf("ScoreRequirement() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreRequirementFields(t *testing.T) {
	tests := []struct {
		name   string
		fields FieldValues
		rule   RequirementRule
		want   int
	}{
		{
			"nol kondisi selalu 100",
			FieldValues{},
			RequirementRule{},
			100,
		},
		{
			"gpa disuplai dan lolos",
			FieldValues{GPA: f64(9)},
			RequirementRule{MinGPA: f64(8.5)},
			100,
		},
		{
			// nilai tidak disuplai = kondisi gagal, bukan di-skip
			"gpa tidak disuplai gagal",
			FieldValues{},
			RequirementRule{MinGPA: f64(8.5)},
			0,
		},
		{
			"nama jenis case-insensitive",
			FieldValues{IELTS: f64(7)},
			RequirementRule{MinScores: []MinScoreRule{{TypeName: "ielts", MinScore: 6.5}}},
			100,
		},
		{
			// entri min-score yang bukan ielts/toeic/sat tidak jadi kondisi
			"jenis tak bernama diabaikan",
			FieldValues{GPA: f64(9)},
			RequirementRule{
				MinGPA:    f64(8.5),
				MinScores: []MinScoreRule{{TypeName: "Olimpiade Fisika", MinScore: 1}},
			},
			100,
		},
		{
			"campuran lolos sebagian",
			FieldValues{GPA: f64(9), TOEIC: f64(600)},
			RequirementRule{
				MinGPA:    f64(8.5),
				MinScores: []MinScoreRule{{TypeName: "TOEIC", MinScore: 700}},
			},
			50,
		},
		{
			"tiga kondisi satu lolos = 33",
			FieldValues{SAT: f64(1400)},
			RequirementRule{
				MinGPA: f64(8.5),
				MinScores: []MinScoreRule{
					{TypeName: "IELTS", MinScore: 6.5},
					{TypeName: "SAT", MinScore: 1200},
				},
			},
			33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreRequirementFields(tt.fields, tt.rule); got != tt.want {
				t.Errorf("ScoreRequirementFields() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Kedua jalur katalog mengevaluasi SEMUA entri requirement dan mengambil yang
// terbaik — beasiswa dinilai dari jalur masuk yang paling mungkin.
func TestBestMatchTakesMaxAcrossEntries(t *testing.T) {
	profile := mathProfile()
	rules := []RequirementRule{
		// 1/2 kondisi → 50
		{MinGPA: f64(8.5), RequiredCertTypeIDs: []uuid.UUID{ieltsType}},
		// 1/1 kondisi → 100
		{MinGPA: f64(8.5)},
	}

	if got := BestMatchPercent(profile, rules); got != 100 {
		t.Errorf("BestMatchPercent() = %d, want 100", got)
	}

	fields := FieldValues{GPA: f64(9)}
	fieldRules := []RequirementRule{
		{MinGPA: f64(8.5), MinScores: []MinScoreRule{{TypeName: "IELTS", MinScore: 6.5}}},
		{MinGPA: f64(8.5)},
	}
	if got := BestFieldMatchPercent(fields, fieldRules); got != 100 {
		t.Errorf("BestFieldMatchPercent() = %d, want 100", got)
	}
}

func TestBestMatchNoRequirements(t *testing.T) {
	if got := BestMatchPercent(CandidateProfile{}, nil); got != 100 {
		t.Errorf("BestMatchPercent(no rules) = %d, want 100", got)
	}
	if got := BestFieldMatchPercent(FieldValues{}, nil); got != 100 {
		t.Errorf("BestFieldMatchPercent(no rules) = %d, want 100", got)
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		satisfied, applicable, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{0, 1, 0},
		{1, 1, 100},
		{1, 8, 13}, // 12.5 dibulatkan ke atas
	}
	for _, tt := range tests {
		if got := roundPercent(tt.satisfied, tt.applicable); got != tt.want {
			t.Errorf("roundPercent(%d, %d) = %d, want %d", tt.satisfied, tt.applicable, got, tt.want)
		}
	}
}

// Contoh ujung-ke-ujung: GPA 9 vs minGPA 8.5 tanpa syarat sertifikat → 100%.
func TestFullExampleEligible(t *testing.T) {
	rule := RequirementRule{MinGPA: f64(8.5)}
	if got := ScoreRequirement(mathProfile(), rule); got != 100 {
		t.Errorf("ScoreRequirement() = %d, want 100", got)
	}
}

// Contoh ujung-ke-ujung: minGPA 9.5 + wajib IELTS yang tidak dipegang → 0%.
// Jalur personal membuang skor 0 dari ranking; katalog publik tetap menampilkannya.
func TestFullExampleIneligible(t *testing.T) {
	rule := RequirementRule{
		MinGPA:              f64(9.5),
		RequiredCertTypeIDs: []uuid.UUID{ieltsType},
	}
	if got := ScoreRequirement(mathProfile(), rule); got != 0 {
		t.Errorf("ScoreRequirement() = %d, want 0", got)
	}
	if got := BestMatchPercent(mathProfile(), []RequirementRule{rule}); got != 0 {
		t.Errorf("BestMatchPercent() = %d, want 0", got)
	}
}

func TestSortByPercentDescStable(t *testing.T) {
	a := ScholarshipMatch{MatchPercent: 50}
	b := ScholarshipMatch{MatchPercent: 100}
	c := ScholarshipMatch{MatchPercent: 50}
	results := []ScholarshipMatch{a, b, c}

	sortByPercentDesc(results)

	got := []int{results[0].MatchPercent, results[1].MatchPercent, results[2].MatchPercent}
	want := []int{100, 50, 50}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("urutan = %v, want %v", got, want)
		}
	}
}
