// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserCredential is the locally persisted login record for a registered tutor.
// A row exists only after the remote tutor profile has been created; the
// password is stored exclusively as an encoded hash, never in the clear.
type UserCredential struct {
	Username     string    // Unique login identifier, chosen by the tutor at registration.
	TutorID      *int32    // Identifier assigned by the tutor profile service. Nil only for legacy rows.
	PasswordHash string    // PHC-encoded argon2id hash of the password.
	CreatedAt    time.Time // Timestamp of when the credential record was created.
}
