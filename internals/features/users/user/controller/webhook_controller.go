// file: internals/features/users/user/controller/webhook_controller.go
package controller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarathi_backend/internals/configs"
	dto "sarathi_backend/internals/features/users/user/dto"
	model "sarathi_backend/internals/features/users/user/model"
	helper "sarathi_backend/internals/helpers"
)

const webhookSignatureHeader = "X-Webhook-Signature"

// Webhook handles identity-provider user events (user.updated, user.deleted).
// The route is public: authenticity rests entirely on the HMAC signature.
// POST /api/auth/webhook
func (ctrl *AuthController) Webhook(c *fiber.Ctx) error {
	secret := strings.TrimSpace(configs.AuthWebhookSecret)
	if secret == "" {
		log.Println("[WEBHOOK] rejected: AUTH_WEBHOOK_SECRET is not configured")
		return helper.JsonError(c, fiber.StatusUnauthorized, "Webhook signature rejected")
	}

	if !verifyWebhookSignature(c.Body(), c.Get(webhookSignatureHeader), secret) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Webhook signature rejected")
	}

	var event dto.WebhookEvent
	if err := c.BodyParser(&event); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}
	if err := ctrl.Validator.Struct(&event); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_external_id = ?", strings.TrimSpace(event.Data.Sub)).Error
	if err == gorm.ErrRecordNotFound {
		// No mirror yet: nothing to update; sync will pick the user up later.
		return helper.JsonOK(c, "Event ignored (no local profile)", fiber.Map{
			"type": event.Type,
		})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	switch event.Type {
	case "user.updated":
		email, name, picture := "", "", ""
		if event.Data.Email != nil {
			email = *event.Data.Email
		}
		if event.Data.Name != nil {
			name = *event.Data.Name
		}
		if event.Data.Picture != nil {
			picture = *event.Data.Picture
		}
		user.ApplyClaims(email, name, picture)
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&user).
			Updates(map[string]any{
				"user_email":      user.UserEmail,
				"user_full_name":  user.UserFullName,
				"user_avatar_url": user.UserAvatarURL,
				"user_updated_at": time.Now(),
			}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "Profile updated from webhook", dto.FromModel(&user))

	case "user.deleted":
		user.Deactivate()
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&user).
			Update("user_is_active", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if err := ctrl.DB.WithContext(c.Context()).Delete(&user).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "Profile disabled from webhook", fiber.Map{
			"user_id": user.UserID,
		})
	}

	return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported event type")
}

// verifyWebhookSignature checks an HMAC-SHA256 hex digest of the raw body.
// Accepts a bare digest or the common "sha256=<hex>" form.
func verifyWebhookSignature(body []byte, header, secret string) bool {
	sig := strings.TrimSpace(header)
	sig = strings.TrimPrefix(sig, "sha256=")
	if sig == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(strings.ToLower(sig)), []byte(want))
}
