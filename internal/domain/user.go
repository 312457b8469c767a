package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser           Role = "user"
	RoleModerator      Role = "moderator"
	RoleContentManager Role = "content_manager"
	RoleSuperAdmin     Role = "super_admin"
)

// AdminRoles lists the roles allowed into the admin API, lowest privilege first.
var AdminRoles = []Role{RoleModerator, RoleContentManager, RoleSuperAdmin}

func (r Role) Valid() bool {
	return r == RoleUser || r.IsAdmin()
}

func (r Role) IsAdmin() bool {
	for _, a := range AdminRoles {
		if r == a {
			return true
		}
	}
	return false
}

// CanManageContent reports whether the role may create, edit or upload media and sliders.
func (r Role) CanManageContent() bool {
	return r == RoleContentManager || r == RoleSuperAdmin
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewUser(name, email, passwordHash string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
