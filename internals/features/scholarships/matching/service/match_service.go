package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userCertModel "beasiswaku_backend/internals/features/certificates/user_certificates/model"
	scholarshipModel "beasiswaku_backend/internals/features/scholarships/scholarships/model"
	userModel "beasiswaku_backend/internals/features/users/user/model"
)

type MatchService struct {
	DB *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db}
}

// ScholarshipMatch: satu baris hasil ranking.
type ScholarshipMatch struct {
	Scholarship  scholarshipModel.ScholarshipModel `json:"scholarship"`
	MatchPercent int                               `json:"match_percent"`
}

// BrowseFilter: filter katalog + nilai lepas untuk Policy B.
type BrowseFilter struct {
	Search   string
	Location string
	Field    string
	SchoolID *uuid.UUID
	Values   FieldValues
}

/* =========================================================
   VARIANT 1 — match seluruh katalog terhadap profil penuh
========================================================= */

// MatchForProfile menghitung Policy A untuk tiap beasiswa (maksimum lintas
// semua entri requirement), buang skor <= 0, lalu urutkan menurun.
func (s *MatchService) MatchForProfile(ctx context.Context, profile CandidateProfile) ([]ScholarshipMatch, error) {
	scholarships, err := s.loadCatalog(ctx, nil)
	if err != nil {
		return nil, err
	}

	results := make([]ScholarshipMatch, 0, len(scholarships))
	for _, sch := range scholarships {
		percent := BestMatchPercent(profile, RulesFromRequirements(sch.Requirements))
		if percent <= 0 {
			continue
		}
		results = append(results, ScholarshipMatch{Scholarship: sch, MatchPercent: percent})
	}

	sortByPercentDesc(results)
	return results, nil
}

/* =========================================================
   VARIANT 2 — listing katalog dengan filter + nilai lepas
========================================================= */

// BrowseCatalog menghitung Policy B per beasiswa. TIDAK ada filter skor:
// beasiswa 0% pun ikut tampil. Urutan menurun, seri mempertahankan urutan
// retrieval (stable sort, tanpa secondary key).
func (s *MatchService) BrowseCatalog(ctx context.Context, filter BrowseFilter) ([]ScholarshipMatch, error) {
	scholarships, err := s.loadCatalog(ctx, &filter)
	if err != nil {
		return nil, err
	}

	results := make([]ScholarshipMatch, 0, len(scholarships))
	for _, sch := range scholarships {
		percent := BestFieldMatchPercent(filter.Values, RulesFromRequirements(sch.Requirements))
		results = append(results, ScholarshipMatch{Scholarship: sch, MatchPercent: percent})
	}

	sortByPercentDesc(results)
	return results, nil
}

/* =========================================================
   LOADERS
========================================================= */

func (s *MatchService) loadCatalog(ctx context.Context, filter *BrowseFilter) ([]scholarshipModel.ScholarshipModel, error) {
	q := s.DB.WithContext(ctx).
		Model(&scholarshipModel.ScholarshipModel{}).
		Preload("School").
		Preload("Requirements").
		Preload("Requirements.RequiredCertificates.CertificateType").
		Preload("Requirements.MinCertificateScores.CertificateType")

	if filter != nil {
		if search := strings.TrimSpace(filter.Search); search != "" {
			q = q.Where("scholarship_name ILIKE ?", "%"+search+"%")
		}
		if location := strings.TrimSpace(filter.Location); location != "" {
			q = q.Where("scholarship_location ILIKE ?", "%"+location+"%")
		}
		if field := strings.TrimSpace(filter.Field); field != "" {
			q = q.Where("scholarship_field ILIKE ?", "%"+field+"%")
		}
		if filter.SchoolID != nil {
			q = q.Where("scholarship_school_id = ?", *filter.SchoolID)
		}
	}

	var scholarships []scholarshipModel.ScholarshipModel
	if err := q.Order("created_at DESC").Find(&scholarships).Error; err != nil {
		return nil, err
	}
	return scholarships, nil
}

// LoadProfile mengambil profil tersimpan caller (rapor + sertifikat) sebagai
// default Variant 1 ketika request tidak menyuplai profil eksplisit.
func (s *MatchService) LoadProfile(ctx context.Context, userID uuid.UUID) (CandidateProfile, error) {
	var profile CandidateProfile

	var sp userModel.StudentProfileModel
	err := s.DB.WithContext(ctx).First(&sp, "student_profile_user_id = ?", userID).Error
	switch {
	case err == nil:
		g10, g11, g12, derr := sp.GradeYears()
		if derr != nil {
			return profile, derr
		}
		profile.Grades10, profile.Grades11, profile.Grades12 = g10, g11, g12
	case errors.Is(err, gorm.ErrRecordNotFound):
		// belum ada rapor → profil kosong, matching tetap jalan
	default:
		return profile, err
	}

	var certs []userCertModel.UserCertificate
	if err := s.DB.WithContext(ctx).Preload("CertificateType").
		Where("user_cert_user_id = ?", userID).
		Order("created_at ASC").
		Find(&certs).Error; err != nil {
		return profile, err
	}
	profile.Certificates = HeldFromUserCertificates(certs)

	return profile, nil
}

/* =========================================================
   KONVERSI MODEL → RULE
========================================================= */

// RulesFromRequirements menormalkan baris requirement DB menjadi RequirementRule.
// Jenis sertifikat yang sudah dihapus (preload nil) dipetakan ke uuid.Nil /
// nama kosong: kondisinya dianggap tak terpenuhi, tidak pernah error.
func RulesFromRequirements(reqs []scholarshipModel.ScholarshipRequirementModel) []RequirementRule {
	rules := make([]RequirementRule, 0, len(reqs))
	for _, r := range reqs {
		rule := RequirementRule{MinGPA: r.RequirementMinGPA}

		for _, rc := range r.RequiredCertificates {
			if rc.CertificateType == nil {
				rule.RequiredCertTypeIDs = append(rule.RequiredCertTypeIDs, uuid.Nil)
				continue
			}
			rule.RequiredCertTypeIDs = append(rule.RequiredCertTypeIDs, rc.ReqCertTypeID)
		}

		for _, ms := range r.MinCertificateScores {
			msRule := MinScoreRule{MinScore: ms.ReqMinScoreValue}
			if ms.CertificateType != nil {
				msRule.TypeID = ms.ReqMinScoreTypeID
				msRule.TypeName = ms.CertificateType.CertificateTypeName
			}
			rule.MinScores = append(rule.MinScores, msRule)
		}

		rules = append(rules, rule)
	}
	return rules
}

// HeldFromUserCertificates membentuk input matcher dari sertifikat tersimpan.
func HeldFromUserCertificates(certs []userCertModel.UserCertificate) []HeldCertificate {
	held := make([]HeldCertificate, 0, len(certs))
	for _, c := range certs {
		h := HeldCertificate{TypeID: c.UserCertTypeID, Score: c.UserCertScore}
		if c.CertificateType != nil {
			h.TypeName = c.CertificateType.CertificateTypeName
		}
		held = append(held, h)
	}
	return held
}

func sortByPercentDesc(results []ScholarshipMatch) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercent > results[j].MatchPercent
	})
}
