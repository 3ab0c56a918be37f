// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ezytutor/internal/domain/entity"
)

// ErrCredentialNotFound is a domain-specific error returned when no credential
// record exists for a username.
var ErrCredentialNotFound = errors.New("credential record not found")

// CredentialRepository defines the standard operations for credential persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CredentialRepository interface {
	// FindByUsername retrieves a single credential record by its username key.
	FindByUsername(ctx context.Context, username string) (*entity.UserCredential, error)

	// Create persists a new credential record. Implementations must report a
	// username collision as a duplicate-user error so concurrent registrations
	// cannot both commit.
	Create(ctx context.Context, credential *entity.UserCredential) error
}
