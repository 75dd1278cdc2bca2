package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated operator. State scopes what an admin can see
// and approve: admins only act on projects created in their own state.
type User struct {
	ID           uuid.UUID
	FullName     string
	Username     string
	PasswordHash string
	Role         UserRole
	State        string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
