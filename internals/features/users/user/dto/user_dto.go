// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sarathi_backend/internals/features/users/user/model"
)

/*
==============================

	Helper: Tri-state updater
	- absent : leave the column alone
	- null   : set the column to NULL
	- value  : set the column to value

==============================
*/
type UpdateField[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.set }
func (f UpdateField[T]) IsNull() bool       { return f.set && f.null }
func (f UpdateField[T]) Val() T             { return f.value }

/* ==============================
   SYNC (POST /api/auth/sync)
============================== */

// SyncRequest is optional: a bare POST with only the bearer token is enough.
// Native Google sign-in clients may send the raw ID token so the mirror can
// be filled from Google's verified payload instead of the access token.
type SyncRequest struct {
	GoogleIDToken *string `json:"google_id_token" validate:"omitempty,min=20"`
}

/* ==============================
   PATCH (PATCH /api/auth/me)
   Local-only profile fields; identity columns stay IdP-owned.
============================== */

type PatchMeRequest struct {
	UserFullName  UpdateField[string] `json:"user_full_name"`  // NOT NULL (ignored when null/empty)
	UserAvatarURL UpdateField[string] `json:"user_avatar_url"` // nullable
	UserExamYear  UpdateField[int]    `json:"user_exam_year"`  // nullable
	UserMedium    UpdateField[string] `json:"user_medium"`     // english|hindi
}

// ToUpdates builds the map for gorm Updates(...).
func (p *PatchMeRequest) ToUpdates() map[string]any {
	u := make(map[string]any, 4)

	if p.UserFullName.ShouldUpdate() && !p.UserFullName.IsNull() {
		if name := strings.TrimSpace(p.UserFullName.Val()); name != "" {
			u["user_full_name"] = name
		}
	}

	if p.UserAvatarURL.ShouldUpdate() {
		if p.UserAvatarURL.IsNull() {
			u["user_avatar_url"] = gorm.Expr("NULL")
		} else if v := strings.TrimSpace(p.UserAvatarURL.Val()); v != "" {
			u["user_avatar_url"] = v
		} else {
			u["user_avatar_url"] = gorm.Expr("NULL")
		}
	}

	if p.UserExamYear.ShouldUpdate() {
		if p.UserExamYear.IsNull() {
			u["user_exam_year"] = gorm.Expr("NULL")
		} else {
			u["user_exam_year"] = p.UserExamYear.Val()
		}
	}

	if p.UserMedium.ShouldUpdate() && !p.UserMedium.IsNull() {
		m := model.UserMedium(strings.ToLower(strings.TrimSpace(p.UserMedium.Val())))
		if m.Valid() {
			u["user_medium"] = m
		}
	}

	return u
}

/* ==============================
   WEBHOOK (POST /api/auth/webhook)
============================== */

type WebhookEvent struct {
	Type string          `json:"type" validate:"required,oneof=user.updated user.deleted"`
	Data WebhookUserData `json:"data" validate:"required"`
}

type WebhookUserData struct {
	Sub     string  `json:"sub" validate:"required"`
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Picture *string `json:"picture"`
}

/* ==============================
   RESPONSE
============================== */

type UserResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	UserExternalID string    `json:"user_external_id"`
	UserEmail      string    `json:"user_email"`
	UserFullName   string    `json:"user_full_name"`
	UserAvatarURL  *string   `json:"user_avatar_url,omitempty"`
	UserRole       string    `json:"user_role"`
	UserExamYear   *int      `json:"user_exam_year,omitempty"`
	UserMedium     string    `json:"user_medium"`
	UserIsActive   bool      `json:"user_is_active"`
	UserCreatedAt  time.Time `json:"user_created_at"`
	UserUpdatedAt  time.Time `json:"user_updated_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:         m.UserID,
		UserExternalID: m.UserExternalID,
		UserEmail:      m.UserEmail,
		UserFullName:   m.UserFullName,
		UserAvatarURL:  m.UserAvatarURL,
		UserRole:       m.UserRole,
		UserExamYear:   m.UserExamYear,
		UserMedium:     m.UserMedium.String(),
		UserIsActive:   m.UserIsActive,
		UserCreatedAt:  m.UserCreatedAt,
		UserUpdatedAt:  m.UserUpdatedAt,
	}
}
