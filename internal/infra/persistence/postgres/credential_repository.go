package postgres

import (
	"context"

	"ezytutor/internal/domain/entity"
	domainerrors "ezytutor/internal/domain/errors"
	"ezytutor/internal/domain/repository"
	"ezytutor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
// It returns the repository as a domain.CredentialRepository interface, adhering to dependency inversion.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByUsername retrieves a single credential record by its username key.
func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.UserCredential, error) {
	var credM model.TutorUserModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&credM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toCredentialDomain(&credM), nil
}

// Create persists a new credential record. A unique violation on the username
// key maps to the domain's duplicate-user error so the orchestrator can treat
// a lost insert race exactly like a duplicate found during lookup.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.UserCredential) error {
	credM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUser.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCredentialWriteFailed.WrapMessage("missing required credential information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential record")
	}

	// Update the entity with the generated timestamp
	credential.CreatedAt = credM.CreatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCredentialDomain converts a GORM TutorUserModel to a domain UserCredential entity.
func toCredentialDomain(data *model.TutorUserModel) *entity.UserCredential {
	if data == nil {
		return nil
	}

	return &entity.UserCredential{
		Username:     data.Username,
		TutorID:      data.TutorID,
		PasswordHash: data.UserPassword,
		CreatedAt:    data.CreatedAt,
	}
}

// fromCredentialDomain converts a domain UserCredential entity to a GORM TutorUserModel for persistence.
func fromCredentialDomain(data *entity.UserCredential) *model.TutorUserModel {
	if data == nil {
		return nil
	}

	return &model.TutorUserModel{
		Username:     data.Username,
		TutorID:      data.TutorID,
		UserPassword: data.PasswordHash,
	}
}
