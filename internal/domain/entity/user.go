package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for the user domain.
// Instances are never mutated in place: updates are persisted through the
// repository and read back as a fresh value with the same ID and CreatedAt.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// New builds a user ready for persistence: random UUID, trimmed name,
// normalized email and the creation timestamp fixed at call time.
func New(name, email string) *User {
	return &User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeEmail applies the canonical form used for the uniqueness
// invariant: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
