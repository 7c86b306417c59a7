// file: internals/features/users/user/controller/auth_controller.go
package controller

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarathi_backend/internals/configs"
	dto "sarathi_backend/internals/features/users/user/dto"
	model "sarathi_backend/internals/features/users/user/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/storage"
	authmw "sarathi_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Handlers
======================= */

// POST /api/auth/sync
// Runs with a verified bearer token but does NOT require an existing mirror
// row: this is the endpoint that creates it. Optionally accepts a Google ID
// token from native sign-in clients and prefers its verified claims.
func (ctrl *AuthController) Sync(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token missing")
	}

	claims, err := authmw.DefaultVerifier().Verify(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid token")
	}

	sub := helper.GetExternalSub(c)
	profile := authmw.ExtractProfile(claims)

	// Optional body; a bare POST is valid.
	var body dto.SyncRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
		}
		if err := ctrl.Validator.Struct(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	if body.GoogleIDToken != nil && strings.TrimSpace(*body.GoogleIDToken) != "" {
		idToken := strings.TrimSpace(*body.GoogleIDToken)

		v := googleAuthIDTokenVerifier.Verifier{}
		if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
		}
		claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Failed to decode Google ID token")
		}

		// Verified Google payload wins over whatever the access token carried.
		sub = claimSet.Sub
		profile.Email = claimSet.Email
		profile.Name = claimSet.Name
		profile.Picture = claimSet.Picture
	}

	if strings.TrimSpace(sub) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token has no subject")
	}

	// Unscoped so a previously soft-deleted mirror can be revived on re-sync.
	var user model.UserModel
	err = ctrl.DB.WithContext(c.Context()).
		Unscoped().
		First(&user, "user_external_id = ?", sub).Error

	switch {
	case err == gorm.ErrRecordNotFound:
		user = model.UserModel{
			UserExternalID: sub,
			UserMedium:     model.UserMediumEnglish,
			UserIsActive:   true,
		}
		user.ApplyClaims(profile.Email, profile.Name, profile.Picture)
		if user.UserEmail == "" {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Token has no email claim; cannot create profile")
		}
		if user.UserFullName == "" {
			user.UserFullName = user.UserEmail
		}
		if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Email already registered to another account")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "Profile synced", dto.FromModel(&user))

	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	user.ApplyClaims(profile.Email, profile.Name, profile.Picture)
	updates := map[string]any{
		"user_email":      user.UserEmail,
		"user_full_name":  user.UserFullName,
		"user_avatar_url": user.UserAvatarURL,
		"user_updated_at": time.Now(),
	}
	if user.UserDeletedAt.Valid {
		updates["user_deleted_at"] = gorm.Expr("NULL")
		user.UserDeletedAt = gorm.DeletedAt{}
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Unscoped().
		Model(&model.UserModel{}).
		Where("user_id = ?", user.UserID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Profile synced", dto.FromModel(&user))
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	uid, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", uid).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(&user))
}

// PATCH /api/auth/me
func (ctrl *AuthController) PatchMe(c *fiber.Ctx) error {
	uid, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.PatchMeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	if body.UserMedium.ShouldUpdate() && !body.UserMedium.IsNull() {
		m := model.UserMedium(strings.ToLower(strings.TrimSpace(body.UserMedium.Val())))
		if !m.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_medium must be english or hindi")
		}
	}
	if body.UserExamYear.ShouldUpdate() && !body.UserExamYear.IsNull() {
		if y := body.UserExamYear.Val(); y < 2000 || y > 2100 {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_exam_year is out of range")
		}
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", uid).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromModel(&user))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&user).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", uid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Profile updated", dto.FromModel(&user))
}

// POST /api/auth/me/avatar
// Multipart upload; the image is re-encoded to webp and pushed to OSS.
// Replaces any avatar we previously stored ourselves.
func (ctrl *AuthController) UploadAvatar(c *fiber.Ctx) error {
	uid, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", uid).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Multipart form required")
	}
	fh := storage.PickUploadedFile(form, "file", "image", "avatar")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file missing")
	}

	svc, err := storage.NewOSSServiceFromEnv("")
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not configured")
	}

	avatarURL, err := svc.UploadAsWebP(c.Context(), fh, "avatars/"+uid.String())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	oldURL := user.UserAvatarURL
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&user).
		Update("user_avatar_url", avatarURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	user.UserAvatarURL = &avatarURL

	// Only objects we uploaded live under avatars/; IdP picture URLs are
	// left alone.
	if oldURL != nil && *oldURL != avatarURL && strings.Contains(*oldURL, "/avatars/") {
		go func(u string) {
			_ = storage.DeleteByPublicURLENV(u, 15*time.Second)
		}(*oldURL)
	}

	return helper.JsonUpdated(c, "Avatar uploaded", dto.FromModel(&user))
}

// DELETE /api/auth/me
// Soft-deletes the local mirror only; the IdP account is out of our hands.
func (ctrl *AuthController) DeleteMe(c *fiber.Ctx) error {
	uid, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("user_id").
		First(&user, "user_id = ?", uid).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Profile deleted", fiber.Map{
		"user_id": uid,
	})
}
