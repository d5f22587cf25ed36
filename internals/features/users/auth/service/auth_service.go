package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authModel "schoolku_backend/internals/features/users/auth/model"
	employeeModel "schoolku_backend/internals/features/hr/employees/model"
	helper "schoolku_backend/internals/helpers"
)

const accessTokenTTL = 2 * time.Hour

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email dan password wajib diisi")
	}

	var user authModel.UserModel
	if err := db.Where("user_email = ?", input.Email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueToken(c, db, user)
}

/* ==========================
   LOGIN GOOGLE (ID token)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	// Google login tidak membuat akun baru: akun dibuat admin/superadmin
	// lebih dulu, di sini hanya dipasangkan via email terverifikasi.
	var user authModel.UserModel
	if err := db.Where("user_google_id = ?", claimSet.Sub).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		email := strings.ToLower(claimSet.Email)
		if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Akun belum terdaftar")
		}
		gid := claimSet.Sub
		if err := db.Model(&user).Update("user_google_id", gid).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		user.UserGoogleID = &gid
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	return issueToken(c, db, user)
}

/* ==========================
   LOGOUT — blacklist token aktif
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	entry := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     tokenString,
		TokenBlacklistExpiredAt: time.Now().Add(resolveBlacklistTTL(tokenString)),
	}
	if err := db.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique constraint") {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	// bersihkan entry yang sudah lewat sekalian
	db.Where("token_blacklist_expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklistModel{})

	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Password baru minimal 8 karakter")
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user authModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := db.Model(&user).Update("user_password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}

/* ==========================
   TOKEN ISSUANCE
========================== */

func buildAccessClaims(user authModel.UserModel, permissions []string, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	if user.UserInstituteID != nil {
		claims["institute_id"] = user.UserInstituteID.String()
	}
	if len(permissions) > 0 {
		claims["permissions"] = permissions
	}
	return claims
}

func issueToken(c *fiber.Ctx, db *gorm.DB, user authModel.UserModel) error {
	secret := configs.JWTSecret
	if secret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	perms := fetchEmployeePermissions(db, user)
	now := time.Now()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, perms, now)).
		SignedString([]byte(secret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"user_id":      user.UserID,
			"user_name":    user.UserName,
			"user_email":   user.UserEmail,
			"role":         user.UserRole,
			"institute_id": user.UserInstituteID,
			"permissions":  perms,
		},
	})
}

// fetchEmployeePermissions mengambil flag permission employee untuk claim token.
// Role selain employee tidak punya flag (admin bypass di middleware).
func fetchEmployeePermissions(db *gorm.DB, user authModel.UserModel) []string {
	if user.UserRole != constants.RoleEmployee {
		return nil
	}
	var emp employeeModel.EmployeeModel
	if err := db.Where("employee_user_id = ?", user.UserID).First(&emp).Error; err != nil {
		return nil
	}
	var perm employeeModel.EmployeePermissionModel
	if err := db.Where("employee_permission_employee_id = ?", emp.EmployeeID).First(&perm).Error; err != nil {
		return nil
	}
	return perm.GrantedKeys()
}

// resolveBlacklistTTL: sisa umur token supaya blacklist tidak numpuk selamanya
func resolveBlacklistTTL(tokenString string) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			if d := time.Until(time.Unix(int64(exp), 0)); d > 0 {
				return d
			}
		}
	}
	return accessTokenTTL
}

// HashPassword dipakai controller lain saat membuat akun login baru.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// EnsureEmailAvailable cek email belum terpakai (case-insensitive).
func EnsureEmailAvailable(db *gorm.DB, email string) error {
	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("LOWER(user_email) = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email sudah terdaftar")
	}
	return nil
}
