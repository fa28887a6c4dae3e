package service

import (
	"testing"

	"github.com/google/uuid"

	certTypeModel "beasiswaku_backend/internals/features/certificates/certificate_types/model"
	userCertModel "beasiswaku_backend/internals/features/certificates/user_certificates/model"
	scholarshipModel "beasiswaku_backend/internals/features/scholarships/scholarships/model"
)

func TestRulesFromRequirements(t *testing.T) {
	ielts := &certTypeModel.CertificateTypeModel{
		CertificateTypeID:   ieltsType,
		CertificateTypeName: "IELTS",
	}

	reqs := []scholarshipModel.ScholarshipRequirementModel{
		{
			RequirementMinGPA: f64(8.5),
			RequiredCertificates: []scholarshipModel.RequirementCertificateModel{
				{ReqCertTypeID: ieltsType, CertificateType: ielts},
				// jenis yang sudah dihapus admin: preload nil
				{ReqCertTypeID: toeicType, CertificateType: nil},
			},
			MinCertificateScores: []scholarshipModel.RequirementMinScoreModel{
				{ReqMinScoreTypeID: ieltsType, ReqMinScoreValue: 6.5, CertificateType: ielts},
				{ReqMinScoreTypeID: satType, ReqMinScoreValue: 1200, CertificateType: nil},
			},
		},
		{},
	}

	rules := RulesFromRequirements(reqs)
	if len(rules) != 2 {
		t.Fatalf("len(rules) = %d, want 2", len(rules))
	}

	r := rules[0]
	if r.MinGPA == nil || *r.MinGPA != 8.5 {
		t.Errorf("MinGPA = %v, want 8.5", r.MinGPA)
	}
	if len(r.RequiredCertTypeIDs) != 2 {
		t.Fatalf("len(RequiredCertTypeIDs) = %d, want 2", len(r.RequiredCertTypeIDs))
	}
	if r.RequiredCertTypeIDs[0] != ieltsType {
		t.Errorf("RequiredCertTypeIDs[0] = %v, want %v", r.RequiredCertTypeIDs[0], ieltsType)
	}
	// jenis terhapus dipetakan ke uuid.Nil, bukan error dan bukan di-drop
	if r.RequiredCertTypeIDs[1] != uuid.Nil {
		t.Errorf("RequiredCertTypeIDs[1] = %v, want uuid.Nil", r.RequiredCertTypeIDs[1])
	}

	if len(r.MinScores) != 2 {
		t.Fatalf("len(MinScores) = %d, want 2", len(r.MinScores))
	}
	if r.MinScores[0].TypeName != "IELTS" || r.MinScores[0].MinScore != 6.5 {
		t.Errorf("MinScores[0] = %+v", r.MinScores[0])
	}
	if r.MinScores[1].TypeID != uuid.Nil || r.MinScores[1].TypeName != "" {
		t.Errorf("MinScores[1] harus anonim untuk jenis terhapus, got %+v", r.MinScores[1])
	}
	if r.MinScores[1].MinScore != 1200 {
		t.Errorf("MinScores[1].MinScore = %v, want 1200", r.MinScores[1].MinScore)
	}

	// entri kosong tetap jadi rule kosong (nol kondisi → 100 di scorer)
	empty := rules[1]
	if empty.MinGPA != nil || len(empty.RequiredCertTypeIDs) != 0 || len(empty.MinScores) != 0 {
		t.Errorf("rule kosong tidak bersih: %+v", empty)
	}
}

func TestHeldFromUserCertificates(t *testing.T) {
	certs := []userCertModel.UserCertificate{
		{
			UserCertTypeID: ieltsType,
			UserCertScore:  6.5,
			CertificateType: &certTypeModel.CertificateTypeModel{
				CertificateTypeID:   ieltsType,
				CertificateTypeName: "IELTS",
			},
		},
		{UserCertTypeID: toeicType, UserCertScore: 800, CertificateType: nil},
	}

	held := HeldFromUserCertificates(certs)
	if len(held) != 2 {
		t.Fatalf("len(held) = %d, want 2", len(held))
	}
	if held[0].TypeName != "IELTS" || held[0].Score != 6.5 {
		t.Errorf("held[0] = %+v", held[0])
	}
	if held[1].TypeName != "" || held[1].TypeID != toeicType {
		t.Errorf("held[1] = %+v", held[1])
	}
}
