package service

import (
	"context"

	"ezytutor/internal/domain/entity"
)

// TutorProfileService creates tutor profile records in the downstream profile
// service. The registration flow depends on this interface, not on the HTTP
// client that implements it.
type TutorProfileService interface {
	// CreateProfile creates a remote tutor profile and returns it with the
	// identifier the profile service assigned.
	CreateProfile(ctx context.Context, name, imageURL, profileText string) (*entity.TutorProfile, error)
}
