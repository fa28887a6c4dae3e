package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationController "beasiswaku_backend/internals/features/applications/controller"
	authMiddleware "beasiswaku_backend/internals/middlewares/auth"
)

func ApplicationRoutes(private fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := applicationController.NewApplicationController(db)

	// submit dijaga premium di middleware; service tetap cek ulang
	private.Post("/applications",
		authMiddleware.PremiumOnly(db, "apply beasiswa"),
		ctrl.Submit)
	private.Get("/applications", ctrl.Mine)
	private.Get("/applications/:id", ctrl.Detail)

	admin.Get("/applications", ctrl.AdminList)
	admin.Patch("/applications/:id/status", ctrl.UpdateStatus)
}
