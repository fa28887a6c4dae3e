package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certTypeController "beasiswaku_backend/internals/features/certificates/certificate_types/controller"
	userCertController "beasiswaku_backend/internals/features/certificates/user_certificates/controller"
)

func CertificateRoutes(private fiber.Router, admin fiber.Router, db *gorm.DB) {
	typeCtrl := certTypeController.NewCertificateTypeController(db)
	certCtrl := userCertController.NewUserCertificateController(db)

	// jenis sertifikat dibaca semua user login (buat form input)
	private.Get("/certificate-types", typeCtrl.List)

	private.Get("/certificates", certCtrl.MyCertificates)
	private.Post("/certificates", certCtrl.Create)
	private.Patch("/certificates/:id", certCtrl.Update)
	private.Delete("/certificates/:id", certCtrl.Delete)

	admin.Post("/certificate-types", typeCtrl.Create)
	admin.Patch("/certificate-types/:id", typeCtrl.Update)
	admin.Delete("/certificate-types/:id", typeCtrl.Delete)
}
