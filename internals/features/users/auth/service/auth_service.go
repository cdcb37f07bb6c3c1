package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	authModel "hostelku_backend/internals/features/users/auth/model"
	userModel "hostelku_backend/internals/features/users/user/model"
	helpers "hostelku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   LOGIN
========================== */

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)
	if input.Identifier == "" || input.Password == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Identifier and password are required")
	}

	var user userModel.UserModel
	if err := db.
		Where("email = ? OR user_name = ?", input.Identifier, input.Identifier).
		First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Wrong identifier or password")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact the admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Wrong identifier or password")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

// POST /api/auth/login-google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	var user userModel.UserModel
	err = db.Where("google_id = ? OR email = ?", claimSet.Sub, claimSet.Email).First(&user).Error
	if err != nil {
		// Google sign-in never self-provisions staff; accounts are created by
		// the admin surface, so an unknown Google identity is rejected.
		return helpers.JsonError(c, fiber.StatusUnauthorized, "No account linked to this Google identity")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact the admin.")
	}
	if user.GoogleID == nil {
		sub := claimSet.Sub
		if err := db.Model(&user).Update("google_id", sub).Error; err != nil {
			log.Printf("[WARN] failed to link google_id: %v", err)
		}
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGOUT
========================== */

// POST /api/auth/logout — blacklists the access token (idempotent) and drops
// the refresh token + cookies.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := rawAccessToken(c)
	if accessToken != "" {
		ttl := resolveBlacklistTTL(accessToken)
		entry := authModel.TokenBlacklist{
			Token:     accessToken,
			ExpiredAt: nowUTC().Add(ttl),
		}
		if err := db.Where("token = ?", accessToken).FirstOrCreate(&entry).Error; err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	}

	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		_ = deleteRefreshTokenByPlain(db, rt)
	}

	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helpers.JsonOK(c, "Logout successful", nil)
}

func rawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if fields := strings.Fields(auth); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return fields[1]
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}
