// internal/model/user.go
package model

import (
	"errors"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// User is the authenticated caller resolved from the bearer token.
type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	FullName    string    `db:"full_name" json:"full_name,omitempty"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	IsSuperuser bool      `db:"is_superuser" json:"is_superuser"`
}
