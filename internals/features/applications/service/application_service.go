package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/features/applications/model"
	userCertModel "beasiswaku_backend/internals/features/certificates/user_certificates/model"
	scholarshipModel "beasiswaku_backend/internals/features/scholarships/scholarships/model"
	userModel "beasiswaku_backend/internals/features/users/user/model"
	"beasiswaku_backend/internals/services/mailer"
)

// Error taksonomi lifecycle — caller branch berdasarkan ini:
// validasi (400/422), not-found (404), konflik (409).
var (
	ErrNotPremium           = errors.New("caller tidak memegang status premium")
	ErrScholarshipNotFound  = errors.New("beasiswa tidak ditemukan")
	ErrApplicationNotFound  = errors.New("aplikasi tidak ditemukan")
	ErrDuplicateApplication = errors.New("masih ada aplikasi pending/approved untuk beasiswa ini")
	ErrStatusTerminal       = errors.New("status aplikasi sudah final dan tidak bisa diubah")
	ErrInvalidStatus        = errors.New("status aplikasi tidak dikenal")
)

// ErrIncompleteGrades menyebut tahun mana yang kosong — penolakan harus
// actionable, bukan "generic failure".
type ErrIncompleteGrades struct {
	Year string
}

func (e ErrIncompleteGrades) Error() string {
	return fmt.Sprintf("rapor %s masih kosong, lengkapi dulu sebelum apply", e.Year)
}

/* =========================================================
   SNAPSHOT PROFIL
========================================================= */

// SnapshotCertificate membawa nama jenis sertifikat hasil resolve SAAT submit.
type SnapshotCertificate struct {
	CertificateTypeID   uuid.UUID `json:"certificate_type_id"`
	CertificateTypeName string    `json:"certificate_type_name"`
	Score               float64   `json:"score"`
	Date                time.Time `json:"date"`
}

type ProfileSnapshot struct {
	Grades10     []userModel.GradeEntry `json:"grades_10"`
	Grades11     []userModel.GradeEntry `json:"grades_11"`
	Grades12     []userModel.GradeEntry `json:"grades_12"`
	Certificates []SnapshotCertificate  `json:"certificates"`
	TakenAt      time.Time              `json:"taken_at"`
}

// BuildProfileSnapshot membuat deep copy profil: mutasi profil live setelah
// submit TIDAK boleh mengubah snapshot. Nama jenis sertifikat di-resolve
// sekali di sini; jenis yang sudah terhapus disimpan dengan nama kosong.
func BuildProfileSnapshot(g10, g11, g12 []userModel.GradeEntry, certs []userCertModel.UserCertificate, takenAt time.Time) ProfileSnapshot {
	snap := ProfileSnapshot{
		Grades10:     copyGrades(g10),
		Grades11:     copyGrades(g11),
		Grades12:     copyGrades(g12),
		Certificates: make([]SnapshotCertificate, 0, len(certs)),
		TakenAt:      takenAt,
	}
	for _, c := range certs {
		sc := SnapshotCertificate{
			CertificateTypeID: c.UserCertTypeID,
			Score:             c.UserCertScore,
			Date:              c.UserCertDate,
		}
		if c.CertificateType != nil {
			sc.CertificateTypeName = c.CertificateType.CertificateTypeName
		}
		snap.Certificates = append(snap.Certificates, sc)
	}
	return snap
}

func copyGrades(in []userModel.GradeEntry) []userModel.GradeEntry {
	out := make([]userModel.GradeEntry, len(in))
	copy(out, in)
	return out
}

// ValidateGradeYears: syarat submit — ketiga tahun harus NON-EMPTY,
// bukan sekadar non-null. Tahun pertama yang kosong yang dilaporkan.
func ValidateGradeYears(g10, g11, g12 []userModel.GradeEntry) error {
	if len(g10) == 0 {
		return ErrIncompleteGrades{Year: "kelas 10"}
	}
	if len(g11) == 0 {
		return ErrIncompleteGrades{Year: "kelas 11"}
	}
	if len(g12) == 0 {
		return ErrIncompleteGrades{Year: "kelas 12"}
	}
	return nil
}

// CanTransition: transisi hanya keluar dari pending. Set approved→pending
// (atau status final lain ke mana pun) ditolak.
func CanTransition(from, to string) bool {
	if !model.ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	return !model.IsTerminal(from)
}

/* =========================================================
   SERVICE
========================================================= */

type ApplicationService struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

func NewApplicationService(db *gorm.DB, m mailer.Mailer) *ApplicationService {
	return &ApplicationService{DB: db, Mailer: m}
}

type SubmitInput struct {
	StudentID     uuid.UUID
	ScholarshipID uuid.UUID
	Essay         *string
	Documents     datatypes.JSON
}

// Submit menjalankan prasyarat berurutan (kegagalan pertama yang dilaporkan):
// premium → beasiswa ada → tidak ada aplikasi pending/approved → rapor lengkap.
// Autentikasi & validitas format scholarship_id sudah dicek layer di atas.
func (s *ApplicationService) Submit(ctx context.Context, in SubmitInput) (*model.ApplicationModel, error) {
	db := s.DB.WithContext(ctx)

	// premium (VIP)
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", in.StudentID).Error; err != nil {
		return nil, err
	}
	if !user.HasActivePremium() {
		return nil, ErrNotPremium
	}

	// beasiswa + sekolah (buat email konfirmasi)
	var sch scholarshipModel.ScholarshipModel
	if err := db.Preload("School").First(&sch, "scholarship_id = ?", in.ScholarshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScholarshipNotFound
		}
		return nil, err
	}

	// guard duplikat (check dulu biar pesannya enak; index unik parsial
	// tetap menutup race dua submit bersamaan)
	var blocking int64
	if err := db.Model(&model.ApplicationModel{}).
		Where("application_student_id = ? AND application_scholarship_id = ? AND application_status IN ?",
			in.StudentID, in.ScholarshipID, model.ResubmissionBlockingStatuses()).
		Count(&blocking).Error; err != nil {
		return nil, err
	}
	if blocking > 0 {
		return nil, ErrDuplicateApplication
	}

	// rapor harus terisi tiga tahun
	var sp userModel.StudentProfileModel
	err := db.First(&sp, "student_profile_user_id = ?", in.StudentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIncompleteGrades{Year: "kelas 10"}
	}
	if err != nil {
		return nil, err
	}
	g10, g11, g12, err := sp.GradeYears()
	if err != nil {
		return nil, err
	}
	if err := ValidateGradeYears(g10, g11, g12); err != nil {
		return nil, err
	}

	// snapshot profil (deep copy + resolve nama tipe sekarang)
	var certs []userCertModel.UserCertificate
	if err := db.Preload("CertificateType").
		Where("user_cert_user_id = ?", in.StudentID).
		Order("created_at ASC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	snapJSON, err := json.Marshal(BuildProfileSnapshot(g10, g11, g12, certs, now))
	if err != nil {
		return nil, err
	}

	docs := in.Documents
	if len(docs) == 0 {
		docs = datatypes.JSON([]byte("[]"))
	}

	app := model.ApplicationModel{
		ApplicationStudentID:       in.StudentID,
		ApplicationScholarshipID:   in.ScholarshipID,
		ApplicationStatus:          model.StatusPending,
		ApplicationProfileSnapshot: datatypes.JSON(snapJSON),
		ApplicationEssay:           in.Essay,
		ApplicationDocuments:       docs,
	}
	if err := db.Create(&app).Error; err != nil {
		// race dua submit bersamaan: index unik parsial yang menang
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}
	app.Scholarship = &sch

	// 📧 notifikasi best-effort SETELAH commit; gagal kirim cuma di-log,
	// aplikasi yang sudah dibuat tidak di-rollback
	go s.notifySubmitted(user, sch, now)

	return &app, nil
}

func (s *ApplicationService) notifySubmitted(user userModel.UserModel, sch scholarshipModel.ScholarshipModel, at time.Time) {
	schoolName := ""
	if sch.School != nil {
		schoolName = sch.School.SchoolName
	}
	mail := mailer.ApplicationSubmittedMail{
		ToName:          user.UserName,
		ToEmail:         user.Email,
		ScholarshipName: sch.ScholarshipName,
		SchoolName:      schoolName,
		SubmittedAt:     at.Format("2006-01-02 15:04"),
	}
	if err := s.Mailer.SendApplicationSubmitted(mail); err != nil {
		log.Printf("[ERROR] Gagal kirim email konfirmasi aplikasi: %v", err)
	}
}

// UpdateStatus: aksi admin. Tidak ada re-validasi kelayakan; satu-satunya
// guard adalah state machine (hanya keluar dari pending).
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID uuid.UUID, status string) (*model.ApplicationModel, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	db := s.DB.WithContext(ctx)

	var app model.ApplicationModel
	if err := db.First(&app, "application_id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if !CanTransition(app.ApplicationStatus, status) {
		return nil, ErrStatusTerminal
	}

	app.ApplicationStatus = status
	if err := db.Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
