package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "tutor_users_pkey"`)))
	assert.True(t, isUniqueConstraintViolation(errors.New("ERROR: duplicate key (SQLSTATE 23505)")))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert failed")))

	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset by peer")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "user_password" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("ERROR: not null violation (SQLSTATE 23502)")))

	assert.False(t, isNotNullConstraintViolation(errors.New("connection reset by peer")))
}
