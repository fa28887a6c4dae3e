// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/constants"
	authMiddleware "beasiswaku_backend/internals/middlewares/auth"
	routeDetails "beasiswaku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT wajib
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN → JWT + role admin
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.AdminOnly...),
	)

	// ===================== FEATURES =====================
	routeDetails.ScholarshipRoutes(public, private, admin, db)
	routeDetails.UserRoutes(private, db)
	routeDetails.CertificateRoutes(private, admin, db)
	routeDetails.SchoolRoutes(public, admin, db)
	routeDetails.MentorRoutes(public, private, db)
	routeDetails.ApplicationRoutes(private, admin, db)
	routeDetails.PaymentRoutes(app, private, db)

	// uptime sederhana untuk monitoring
	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})
}
