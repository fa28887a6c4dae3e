package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "beasiswaku_backend/internals/features/schools/controller"
)

func SchoolRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	public.Get("/schools", ctrl.List)
	public.Get("/schools/:id", ctrl.Detail)

	admin.Post("/schools", ctrl.Create)
	admin.Patch("/schools/:id", ctrl.Update)
	admin.Delete("/schools/:id", ctrl.Delete)
}
