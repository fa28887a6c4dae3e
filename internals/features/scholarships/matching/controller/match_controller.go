package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/features/scholarships/matching/dto"
	matchService "beasiswaku_backend/internals/features/scholarships/matching/service"
	userModel "beasiswaku_backend/internals/features/users/user/model"
	helper "beasiswaku_backend/internals/helpers"
)

type MatchController struct {
	DB      *gorm.DB
	Service *matchService.MatchService
}

func NewMatchController(db *gorm.DB) *MatchController {
	return &MatchController{DB: db, Service: matchService.NewMatchService(db)}
}

// 🟢 POST /api/u/scholarships/match — Variant profil-penuh (Policy A)
// Body boleh kosong: kalau caller tidak menyuplai profil, pakai profil tersimpan.
func (ctrl *MatchController) MatchForProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.MatchProfileRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
		}
		if err := helper.Validate.Struct(body); err != nil {
			return helper.JsonValidationError(c, helper.MapValidationErrors(err))
		}
	}

	var profile matchService.CandidateProfile
	if body.IsEmpty() {
		profile, err = ctrl.Service.LoadProfile(c.UserContext(), userID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat profil tersimpan")
		}
	} else {
		profile = profileFromRequest(body)
	}

	results, err := ctrl.Service.MatchForProfile(c.UserContext(), profile)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kecocokan beasiswa")
	}

	return helper.JsonOK(c, "ok", results)
}

// 🟢 GET /api/public/scholarships — Variant listing katalog (Policy B)
// ?search=&location=&field=&school_id=&gpa=&ielts=&toeic=&sat=
func (ctrl *MatchController) BrowseCatalog(c *fiber.Ctx) error {
	filter := matchService.BrowseFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Field:    c.Query("field"),
	}

	if raw := strings.TrimSpace(c.Query("school_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "school_id tidak valid")
		}
		filter.SchoolID = &id
	}

	var parseErr error
	filter.Values.GPA = queryFloat(c, "gpa", &parseErr)
	filter.Values.IELTS = queryFloat(c, "ielts", &parseErr)
	filter.Values.TOEIC = queryFloat(c, "toeic", &parseErr)
	filter.Values.SAT = queryFloat(c, "sat", &parseErr)
	if parseErr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, parseErr.Error())
	}

	results, err := ctrl.Service.BrowseCatalog(c.UserContext(), filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil katalog beasiswa")
	}

	return helper.JsonOK(c, "ok", results)
}

func profileFromRequest(body dto.MatchProfileRequest) matchService.CandidateProfile {
	profile := matchService.CandidateProfile{
		Grades10: gradesFromRequest(body.Grades10),
		Grades11: gradesFromRequest(body.Grades11),
		Grades12: gradesFromRequest(body.Grades12),
	}
	for _, cert := range body.Certificates {
		typeID, err := uuid.Parse(cert.CertificateTypeID)
		if err != nil {
			continue // sudah divalidasi tag uuid; jaga-jaga saja
		}
		profile.Certificates = append(profile.Certificates, matchService.HeldCertificate{
			TypeID: typeID,
			Score:  cert.Score,
		})
	}
	return profile
}

func gradesFromRequest(in []dto.GradeEntryRequest) []userModel.GradeEntry {
	out := make([]userModel.GradeEntry, 0, len(in))
	for _, g := range in {
		out = append(out, userModel.GradeEntry{Subject: g.Subject, Score: g.Score})
	}
	return out
}

func queryFloat(c *fiber.Ctx, key string, parseErr *error) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if *parseErr == nil {
			*parseErr = fiber.NewError(fiber.StatusBadRequest, key+" harus angka")
		}
		return nil
	}
	return &v
}
