// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "ezytutor/internal/delivery/context"
	"ezytutor/internal/domain/entity"
	domainerrors "ezytutor/internal/domain/errors"
	"ezytutor/internal/domain/repository"
	"ezytutor/internal/domain/service"
	"ezytutor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tutorService implements the TutorUsecase interface.
type tutorService struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	profiles    service.TutorProfileService
	logger      *slog.Logger
}

// TutorServiceParams holds dependencies for tutorService, injected by Fx.
type TutorServiceParams struct {
	fx.In

	Credentials repository.CredentialRepository
	Hasher      service.PasswordHasher
	Profiles    service.TutorProfileService
	Logger      *slog.Logger
}

// NewTutorService is the constructor for tutorService. It receives all dependencies as interfaces.
func NewTutorService(params TutorServiceParams) usecase.TutorUsecase {
	return &tutorService{
		credentials: params.Credentials,
		hasher:      params.Hasher,
		profiles:    params.Profiles,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tutorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the two-phase tutor registration: duplicate check,
// password confirmation, remote profile creation, then local credential insert.
// Each step short-circuits; the profile service is called at most once and at
// most one credential row is written, with no retries.
func (srv *tutorService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting tutor registration", slog.String("username", input.Username))

	_, err := srv.credentials.FindByUsername(ctx, input.Username)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, username taken", slog.String("username", input.Username))

		return nil, domainerrors.ErrDuplicateUser.WrapMessage("username already registered")
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		// A store failure is not the same as an unknown username. Abort rather
		// than let a broken store admit a registration for an existing user.
		srv.log(ctx).Error("Credential lookup failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialStoreFailed, "failed to look up credential record")
	}

	if input.Password != input.Confirmation {
		srv.log(ctx).Warn("Registration rejected, password confirmation mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrPasswordMismatch.WrapMessage("password and confirmation differ")
	}

	profile, err := srv.profiles.CreateProfile(ctx, input.Name, input.ImageURL, input.Profile)
	if err != nil {
		srv.log(ctx).Error("Remote tutor profile creation failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create remote tutor profile")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		// The remote profile already exists at this point; there is no
		// compensation call, so record the orphaned id for manual cleanup.
		srv.log(ctx).Error("Password hashing failed after remote profile creation",
			slog.String("username", input.Username),
			slog.Int("orphanedTutorID", int(profile.TutorID)),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	tutorID := profile.TutorID
	credential := &entity.UserCredential{
		Username:     input.Username,
		TutorID:      &tutorID,
		PasswordHash: hashedPassword,
	}

	if err := srv.credentials.Create(ctx, credential); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateUser) {
			// A concurrent registration for the same username won the insert.
			srv.log(ctx).Warn("Concurrent registration detected on insert",
				slog.String("username", input.Username),
				slog.Int("orphanedTutorID", int(profile.TutorID)))

			return nil, errors.Wrap(err, "username already registered")
		}

		srv.log(ctx).Error("Credential insert failed, remote tutor profile is orphaned",
			slog.String("username", input.Username),
			slog.Int("orphanedTutorID", int(profile.TutorID)),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create credential record")
	}

	srv.log(ctx).Debug("Tutor registration completed",
		slog.String("username", input.Username),
		slog.Int("tutorID", int(profile.TutorID)))

	return &usecase.RegisterOutput{TutorID: profile.TutorID}, nil
}

// SignIn verifies the submitted password against the stored credential record.
func (srv *tutorService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("username", input.Username))

	credential, err := srv.credentials.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Sign-in failed, unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("no credential record for username")
		}

		srv.log(ctx).Error("Credential lookup failed during sign-in", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialStoreFailed, "failed to look up credential record")
	}

	match, err := srv.hasher.Verify(input.Password, credential.PasswordHash)
	if err != nil {
		// A corrupt stored hash must not take down the request; surface it as
		// a recoverable verification failure.
		srv.log(ctx).Error("Stored password hash could not be verified", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.ErrVerificationFailed.WrapMessage("stored password hash is not verifiable")
	}
	if !match {
		srv.log(ctx).Warn("Sign-in failed, password mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidLogin.WrapMessage("password does not match stored hash")
	}

	srv.log(ctx).Debug("Sign-in succeeded", slog.String("username", input.Username))

	return &usecase.SignInOutput{Username: credential.Username}, nil
}
