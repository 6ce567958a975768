package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleUser is the role assigned to every account on registration.
const RoleUser = "ROLE_USER"

// Login types distinguish locally registered accounts from external ones.
const (
	LoginTypeLocal  = "local"
	LoginTypeSocial = "social"
)

// UserDB represents a user record in the database.
// The password hash is never serialized into responses.
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	Username     string    `json:"username" db:"username"`     // Display name
	Email        string    `json:"email" db:"email"`           // Unique, used as token subject
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	Role         string    `json:"role" db:"role"`             // Role tag, ROLE_USER by default
	Locked       bool      `json:"locked" db:"locked"`         // Account locked flag
	LoginType    string    `json:"login_type" db:"login_type"` // local or social
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
