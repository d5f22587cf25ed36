package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := &authController.AuthHandler{DB: db}

	public := app.Group("/auth", middlewares.LoginRateLimiter())
	public.Post("/login", h.Login)
	public.Post("/login/google", h.LoginGoogle)

	private := app.Group("/auth", authMiddleware.AuthMiddleware(db))
	private.Post("/logout", h.Logout)
	private.Post("/change-password", h.ChangePassword)
	private.Get("/me", h.Me)
}
