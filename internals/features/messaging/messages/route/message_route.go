package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/messaging/messages/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func MessageRoutes(admin fiber.Router, user fiber.Router, db *gorm.DB) {
	h := controller.NewMessageHandler(db)

	// staf (admin / pegawai dengan izin pesan)
	msg := admin.Group("/messages", auth.EmployeePermission(constants.PermMessages))
	msg.Post("/", h.Send)
	msg.Get("/inbox", h.Inbox)
	msg.Get("/sent", h.Sent)
	msg.Put("/:id/read", h.MarkRead)

	// siswa memakai jalur /api/u yang sama
	userMsg := user.Group("/messages")
	userMsg.Post("/", h.Send)
	userMsg.Get("/inbox", h.Inbox)
	userMsg.Get("/sent", h.Sent)
	userMsg.Put("/:id/read", h.MarkRead)
}
