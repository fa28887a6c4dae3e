package service

import (
	"github.com/google/uuid"
)

// HasRequiredCertificates: true kalau required kosong, atau SEMUA jenis di
// required ada di sertifikat kandidat. Skor tidak dilihat sama sekali di sini.
// Entri uuid.Nil (jenis sertifikat terhapus) tidak pernah ketemu → false.
func HasRequiredCertificates(held []HeldCertificate, required []uuid.UUID) bool {
	for _, typeID := range required {
		if !holdsType(held, typeID) {
			return false
		}
	}
	return true
}

// MatchesMinScores: true kalau rules kosong, atau untuk SETIAP rule ada
// sertifikat kandidat dengan jenis yang sama dan skor >= minimum.
// Rule yang jenisnya tidak dipegang kandidat GAGAL, bukan di-skip.
func MatchesMinScores(held []HeldCertificate, rules []MinScoreRule) bool {
	for _, rule := range rules {
		cert, ok := firstOfType(held, rule.TypeID)
		if !ok || cert.Score < rule.MinScore {
			return false
		}
	}
	return true
}

func holdsType(held []HeldCertificate, typeID uuid.UUID) bool {
	if typeID == uuid.Nil {
		return false
	}
	for _, h := range held {
		if h.TypeID == typeID {
			return true
		}
	}
	return false
}

// firstOfType ambil match pertama — siswa diasumsikan satu skor per jenis.
func firstOfType(held []HeldCertificate, typeID uuid.UUID) (HeldCertificate, bool) {
	if typeID == uuid.Nil {
		return HeldCertificate{}, false
	}
	for _, h := range held {
		if h.TypeID == typeID {
			return h, true
		}
	}
	return HeldCertificate{}, false
}
