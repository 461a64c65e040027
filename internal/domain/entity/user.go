// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted identity and credential record of a registered account.
// PasswordHash is internal state: it must never cross the delivery boundary,
// so the usecase layer maps User into sanitized output DTOs before returning.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The login identifier. Uniqueness is enforced by the store.
	Name         string    // The user's display name.
	PasswordHash string    // Salted, algorithm-tagged hash of the password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
