package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	matchController "beasiswaku_backend/internals/features/scholarships/matching/controller"
	scholarshipController "beasiswaku_backend/internals/features/scholarships/scholarships/controller"
)

func ScholarshipRoutes(public fiber.Router, private fiber.Router, admin fiber.Router, db *gorm.DB) {
	schCtrl := scholarshipController.NewScholarshipController(db)
	reqCtrl := scholarshipController.NewRequirementController(db)
	matchCtrl := matchController.NewMatchController(db)

	// katalog publik dengan persentase match (query param opsional)
	public.Get("/scholarships", matchCtrl.BrowseCatalog)
	public.Get("/scholarships/:id", schCtrl.Detail)

	// matching personal (profil tersimpan atau ad-hoc dari body)
	private.Post("/scholarships/match", matchCtrl.MatchForProfile)

	// admin CRUD
	admin.Post("/scholarships", schCtrl.Create)
	admin.Patch("/scholarships/:id", schCtrl.Update)
	admin.Delete("/scholarships/:id", schCtrl.Delete)
	admin.Post("/scholarships/:id/requirements", reqCtrl.Create)
	admin.Delete("/requirements/:id", reqCtrl.Delete)
}
