package service

import (
	"math"
	"strings"
)

// ScoreRequirement — Policy A (boolean per-kondisi, profil penuh).
// Kondisi yang dihitung hanya yang memang dipasang requirement:
// minGPA, daftar sertifikat wajib, daftar skor minimum. Tiap kondisi bernilai
// sama walau membundel banyak sub-item (lima sertifikat wajib = satu kondisi).
// Nol kondisi berlaku ⇒ 100%: tanpa syarat artinya semua orang layak.
func ScoreRequirement(profile CandidateProfile, rule RequirementRule) int {
	applicable := 0
	satisfied := 0

	if rule.MinGPA != nil {
		applicable++
		gpa := CalculateGPA(profile.Grades10, profile.Grades11, profile.Grades12)
		if gpa != nil && *gpa >= *rule.MinGPA {
			satisfied++
		}
	}

	if len(rule.RequiredCertTypeIDs) > 0 {
		applicable++
		if HasRequiredCertificates(profile.Certificates, rule.RequiredCertTypeIDs) {
			satisfied++
		}
	}

	if len(rule.MinScores) > 0 {
		applicable++
		if MatchesMinScores(profile.Certificates, rule.MinScores) {
			satisfied++
		}
	}

	if applicable == 0 {
		return 100
	}
	return roundPercent(satisfied, applicable)
}

// ScoreRequirementFields — Policy B (nilai lepas gpa/ielts/toeic/sat).
// Hanya kondisi yang requirement-nya memang membatasi yang dihitung:
// minGPA untuk gpa, dan entri skor-minimum yang NAMA jenis sertifikatnya
// sama (case-insensitive) dengan salah satu field bernama.
// Kondisi terpenuhi kalau nilainya disuplai dan >= ambang.
func ScoreRequirementFields(fields FieldValues, rule RequirementRule) int {
	applicable := 0
	satisfied := 0

	check := func(supplied *float64, min float64) {
		applicable++
		if supplied != nil && *supplied >= min {
			satisfied++
		}
	}

	if rule.MinGPA != nil {
		check(fields.GPA, *rule.MinGPA)
	}

	for _, ms := range rule.MinScores {
		switch {
		case strings.EqualFold(ms.TypeName, "ielts"):
			check(fields.IELTS, ms.MinScore)
		case strings.EqualFold(ms.TypeName, "toeic"):
			check(fields.TOEIC, ms.MinScore)
		case strings.EqualFold(ms.TypeName, "sat"):
			check(fields.SAT, ms.MinScore)
		}
	}

	if applicable == 0 {
		return 100
	}
	return roundPercent(satisfied, applicable)
}

// BestMatchPercent mengevaluasi SEMUA entri requirement dan ambil maksimum.
// Beasiswa tanpa requirement sama sekali ⇒ 100%.
func BestMatchPercent(profile CandidateProfile, rules []RequirementRule) int {
	if len(rules) == 0 {
		return 100
	}
	best := 0
	for _, rule := range rules {
		if p := ScoreRequirement(profile, rule); p > best {
			best = p
		}
	}
	return best
}

// BestFieldMatchPercent: versi Policy B dari BestMatchPercent.
func BestFieldMatchPercent(fields FieldValues, rules []RequirementRule) int {
	if len(rules) == 0 {
		return 100
	}
	best := 0
	for _, rule := range rules {
		if p := ScoreRequirementFields(fields, rule); p > best {
			best = p
		}
	}
	return best
}

// roundPercent: nearest-integer, setengah dibulatkan ke atas (1/3 → 33, 1/2 → 50).
func roundPercent(satisfied, applicable int) int {
	return int(math.Round(float64(satisfied) / float64(applicable) * 100))
}
