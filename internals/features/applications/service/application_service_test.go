package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"beasiswaku_backend/internals/features/applications/model"
	certTypeModel "beasiswaku_backend/internals/features/certificates/certificate_types/model"
	userCertModel "beasiswaku_backend/internals/features/certificates/user_certificates/model"
	userModel "beasiswaku_backend/internals/features/users/user/model"
)

func TestValidateGradeYears(t *testing.T) {
	g := []userModel.GradeEntry{{Subject: "Math", Score: 8}}

	tests := []struct {
		name          string
		g10, g11, g12 []userModel.GradeEntry
		wantYear      string
	}{
		{"semua terisi", g, g, g, ""},
		{"kelas 10 kosong", nil, g, g, "kelas 10"},
		{"kelas 11 kosong", g, nil, g, "kelas 11"},
		{"kelas 12 kosong", g, g, nil, "kelas 12"},
		// tahun pertama yang kosong yang disebut
		{"semua kosong sebut kelas 10", nil, nil, nil, "kelas 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGradeYears(tt.g10, tt.g11, tt.g12)
			if tt.wantYear == "" {
				if err != nil {
					t.Fatalf("ValidateGradeYears() = %v, want nil", err)
				}
				return
			}
			var incomplete ErrIncompleteGrades
			if err == nil {
				t.Fatalf("ValidateGradeYears() = nil, want error %q", tt.wantYear)
			}
			var ok bool
			incomplete, ok = err.(ErrIncompleteGrades)
			if !ok {
				t.Fatalf("error type = %T, want ErrIncompleteGrades", err)
			}
			if incomplete.Year != tt.wantYear {
				t.Errorf("Year = %q, want %q", incomplete.Year, tt.wantYear)
			}
			if !strings.Contains(err.Error(), tt.wantYear) {
				t.Errorf("pesan error %q tidak menyebut tahunnya", err.Error())
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{model.StatusPending, model.StatusApproved, true},
		{model.StatusPending, model.StatusRejected, true},
		{model.StatusPending, model.StatusCancelled, true},
		// status final tidak bisa diubah lagi
		{model.StatusApproved, model.StatusPending, false},
		{model.StatusApproved, model.StatusRejected, false},
		{model.StatusRejected, model.StatusApproved, false},
		{model.StatusCancelled, model.StatusPending, false},
		// no-op diizinkan
		{model.StatusApproved, model.StatusApproved, true},
		// status asing ditolak
		{model.StatusPending, "archived", false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBuildProfileSnapshotResolvesTypeNames(t *testing.T) {
	certs := []userCertModel.UserCertificate{
		{
			UserCertTypeID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			UserCertScore:  6.5,
			UserCertDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			CertificateType: &certTypeModel.CertificateTypeModel{
				CertificateTypeName: "IELTS",
			},
		},
		// jenis sudah dihapus admin → nama kosong, bukan error
		{
			UserCertTypeID: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			UserCertScore:  800,
		},
	}

	snap := BuildProfileSnapshot(nil, nil, nil, certs, time.Now())
	if len(snap.Certificates) != 2 {
		t.Fatalf("len(Certificates) = %d, want 2", len(snap.Certificates))
	}
	if snap.Certificates[0].CertificateTypeName != "IELTS" {
		t.Errorf("nama[0] = %q, want IELTS", snap.Certificates[0].CertificateTypeName)
	}
	if snap.Certificates[1].CertificateTypeName != "" {
		t.Errorf("nama[1] = %q, want kosong", snap.Certificates[1].CertificateTypeName)
	}
}

// Snapshot harus deep copy: mutasi slice sumber setelah snapshot tidak boleh
// mengubah isi snapshot.
func TestBuildProfileSnapshotIsDeepCopy(t *testing.T) {
	g10 := []userModel.GradeEntry{{Subject: "Math", Score: 8}}
	g11 := []userModel.GradeEntry{{Subject: "Math", Score: 9}}
	g12 := []userModel.GradeEntry{{Subject: "Math", Score: 10}}

	snap := BuildProfileSnapshot(g10, g11, g12, nil, time.Now())

	g10[0].Score = 1
	g11[0].Subject = "Fisika"
	g12[0] = userModel.GradeEntry{Subject: "Kimia", Score: 2}

	if snap.Grades10[0].Score != 8 {
		t.Errorf("Grades10[0].Score = %v, want 8", snap.Grades10[0].Score)
	}
	if snap.Grades11[0].Subject != "Math" {
		t.Errorf("Grades11[0].Subject = %q, want Math", snap.Grades11[0].Subject)
	}
	if snap.Grades12[0].Subject != "Math" || snap.Grades12[0].Score != 10 {
		t.Errorf("Grades12[0] = %+v, want {Math 10}", snap.Grades12[0])
	}
}
