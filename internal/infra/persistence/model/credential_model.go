// Package model contains the GORM persistence models backing the domain entities.
package model

import "time"

// TutorUserModel mirrors the 'tutor_users' table. The username is the primary
// key; the unique constraint is what arbitrates concurrent registrations for
// the same username.
type TutorUserModel struct {
	Username     string    `gorm:"type:varchar(50);primaryKey;column:username"`
	TutorID      *int32    `gorm:"column:tutor_id"`
	UserPassword string    `gorm:"type:text;not null;column:user_password"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName explicitly sets the table name for GORM.
func (TutorUserModel) TableName() string {
	return "tutor_users"
}
