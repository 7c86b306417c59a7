// file: internals/features/users/user/model/user_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
)

/* =========================================================
   ENUM: user_medium
========================================================= */

type UserMedium string

const (
	UserMediumEnglish UserMedium = constants.MediumEnglish
	UserMediumHindi   UserMedium = constants.MediumHindi
)

func (m UserMedium) String() string { return string(m) }

func (m UserMedium) Valid() bool {
	switch m {
	case UserMediumEnglish, UserMediumHindi:
		return true
	}
	return false
}

func (m *UserMedium) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = UserMediumEnglish
	case string:
		*m = UserMedium(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*m = UserMedium(strings.ToLower(strings.TrimSpace(string(v))))
	default:
		return fmt.Errorf("unsupported scan type for UserMedium: %T", value)
	}
	return nil
}

func (m UserMedium) Value() (driver.Value, error) { return string(m), nil }

/* =========================================================
   MODEL: users
   Local mirror of the identity provider's user record.
   The IdP owns credentials and sessions; this table only
   holds the profile columns the rest of the app joins on.
========================================================= */

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	// Subject (`sub`) from the identity provider. Single join key with the IdP.
	UserExternalID string `gorm:"column:user_external_id;type:varchar(191);not null;uniqueIndex:uq_users_external_id" json:"user_external_id"`

	UserEmail     string  `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email" json:"user_email"`
	UserFullName  string  `gorm:"column:user_full_name;type:varchar(120);not null" json:"user_full_name"`
	UserAvatarURL *string `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`

	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'student';index:idx_users_role" json:"user_role"`

	UserExamYear *int       `gorm:"column:user_exam_year;type:smallint" json:"user_exam_year,omitempty"`
	UserMedium   UserMedium `gorm:"column:user_medium;type:varchar(10);not null;default:'english'" json:"user_medium"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.UserEmail = strings.ToLower(strings.TrimSpace(u.UserEmail))
	u.UserFullName = strings.TrimSpace(u.UserFullName)

	role := strings.ToLower(strings.TrimSpace(u.UserRole))
	valid := false
	for _, r := range constants.AllRoles {
		if role == r {
			valid = true
			break
		}
	}
	if valid {
		u.UserRole = role
	} else {
		u.UserRole = constants.RoleStudent
	}

	if !u.UserMedium.Valid() {
		u.UserMedium = UserMediumEnglish
	}
	u.UserUpdatedAt = time.Now()
	return nil
}

/* =========================================================
   Helper methods
========================================================= */

// ApplyClaims refreshes mirrored columns from verified token claims.
// Empty claim values never blank out data we already hold.
func (u *UserModel) ApplyClaims(email, name, picture string) {
	if v := strings.TrimSpace(email); v != "" {
		u.UserEmail = strings.ToLower(v)
	}
	if v := strings.TrimSpace(name); v != "" {
		u.UserFullName = v
	}
	if v := strings.TrimSpace(picture); v != "" {
		u.UserAvatarURL = &v
	}
}

func (u *UserModel) Deactivate() { u.UserIsActive = false }
