package service

import (
	userModel "beasiswaku_backend/internals/features/users/user/model"
)

// CalculateGPA merata-ratakan SEMUA nilai di ketiga tahun (skala mentah 0-10).
// Mapel tidak di-dedup: mapel yang muncul dua kali dihitung dua kali.
// Return nil kalau ketiga tahun kosong — bukan 0, supaya "tidak ada data"
// bisa dibedakan dari "rata-rata nol".
func CalculateGPA(g10, g11, g12 []userModel.GradeEntry) *float64 {
	var sum float64
	var count int
	for _, year := range [][]userModel.GradeEntry{g10, g11, g12} {
		for _, g := range year {
			sum += g.Score
			count++
		}
	}
	if count == 0 {
		return nil
	}
	gpa := sum / float64(count)
	return &gpa
}
