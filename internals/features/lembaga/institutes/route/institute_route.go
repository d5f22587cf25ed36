package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instituteController "schoolku_backend/internals/features/lembaga/institutes/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// InstituteRoutes: kelola tenant, superadmin only
func InstituteRoutes(api fiber.Router, db *gorm.DB) {
	h := &instituteController.InstituteHandler{DB: db}

	grp := api.Group("/institutes", authMiddleware.OnlySuperadmin())
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Get("/:id", h.Detail)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}
