// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput carries one registration form submission. Field names follow
// the registration form's input names.
type RegisterInput struct {
	Username     string `form:"username" validate:"required"`
	Password     string `form:"password" validate:"required"`
	Confirmation string `form:"confirmation" validate:"required"`
	Name         string `form:"name" validate:"required"`
	ImageURL     string `form:"imageurl"`
	Profile      string `form:"profile"`
}

// SignInInput carries one sign-in form submission.
type SignInInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the identifier the profile service assigned to the
// newly registered tutor.
type RegisterOutput struct {
	TutorID int32
}

// SignInOutput returns the verified username after a successful sign-in.
type SignInOutput struct {
	Username string
}

// TutorUsecase defines the interface for tutor registration and sign-in.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type TutorUsecase interface {
	// Register validates the submission, creates the remote tutor profile and
	// then persists the local credential record.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// SignIn verifies the submitted password against the stored credential
	// record. It is read-only against the credential store.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
}
