package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/finance/fees/controller"
	"schoolku_backend/internals/middlewares/auth"
)

// FeeRoutes — ledger biaya sekolah. Staff butuh izin can_fees;
// tarif & aturan denda dikelola admin.
func FeeRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewFeeHandler(db)

	fees := api.Group("/fees", auth.EmployeePermission(constants.PermFees))
	fees.Post("/generate", h.Generate)
	fees.Post("/collect", h.Collect)
	fees.Post("/collect-online", h.CollectOnline)
	fees.Get("/defaulters", h.Defaulters)
	fees.Get("/invoice/:id", h.Invoice)
	fees.Get("/payments", h.Payments)
	fees.Post("/structure", h.CreateStructure)

	feesAdmin := api.Group("/fees", auth.AdminOrSuperadmin())
	feesAdmin.Get("/receipt/:id", h.Receipt)
	feesAdmin.Get("/history", h.History)
	feesAdmin.Get("/structure", h.ListStructures)
	feesAdmin.Get("/structure/by-scope", h.StructuresByScope)
	feesAdmin.Post("/structure/save", h.SaveStructures)
	feesAdmin.Put("/fine-rule", h.SetFineRule)
	feesAdmin.Get("/fine-rule", h.GetFineRule)
}

// FeeWebhookRoutes dipasang di luar grup ber-JWT; Midtrans memanggil
// endpoint ini langsung.
func FeeWebhookRoutes(app fiber.Router, db *gorm.DB) {
	h := controller.NewFeeHandler(db)
	app.Post("/api/webhooks/midtrans", h.MidtransWebhook)
}
