package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser       UserRole = "USER"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusDisabled UserStatus = "DISABLED"
)

type User struct {
	Id            uuid.UUID
	CompanyId     uuid.UUID
	Email         string
	FullName      string
	PasswordHash  *string // nil for OAuth-only accounts
	Role          UserRole
	Status        UserStatus
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

type EmailVerificationToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Principal is the authenticated actor derived from a verified session token.
// It is immutable for the lifetime of the request that resolved it.
type Principal struct {
	UserId    uuid.UUID
	CompanyId uuid.UUID
	Role      UserRole
}

// IsAdmin reports whether the principal holds an administrative role.
func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin || p.Role == UserRoleSuperAdmin
}
