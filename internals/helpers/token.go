package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals keys — diisi oleh auth middleware
============================================ */

const (
	LocUserID      = "user_id"      // string UUID
	LocRole        = "role"         // superadmin|admin|employee|student
	LocInstituteID = "institute_id" // string UUID (kosong untuk superadmin)
	LocPermissions = "permissions"  // []string (employee saja)
	LocUserName    = "user_name"
)

var (
	ErrNoUserID      = errors.New("user_id tidak ada di token")
	ErrNoInstituteID = errors.New("institute_id tidak ada di token")
)

func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	if raw == "" {
		return uuid.Nil, ErrNoUserID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserID
	}
	return id, nil
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}

// GetInstituteIDFromLocals mengembalikan tenant aktif milik caller.
// Superadmin tanpa institute aktif akan dapat ErrNoInstituteID —
// endpoint tenant-scoped memang tidak berlaku untuknya.
func GetInstituteIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocInstituteID).(string)
	if raw == "" {
		return uuid.Nil, ErrNoInstituteID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoInstituteID
	}
	return id, nil
}

func GetPermissionsFromLocals(c *fiber.Ctx) []string {
	switch v := c.Locals(LocPermissions).(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func HasPermission(c *fiber.Ctx, perm string) bool {
	for _, p := range GetPermissionsFromLocals(c) {
		if p == perm {
			return true
		}
	}
	return false
}
