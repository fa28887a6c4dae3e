package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"beasiswaku_backend/internals/configs"
	authModel "beasiswaku_backend/internals/features/users/auth/model"
	userModel "beasiswaku_backend/internals/features/users/user/model"
	helpers "beasiswaku_backend/internals/helpers"
)

/* ==========================
   Const & Small Helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Hash refresh token sebelum disimpan; plaintext tidak pernah masuk DB.
func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":    user.ID.String(),
		"user_name":  user.UserName,
		"role":       user.Role,
		"is_premium": user.HasActivePremium(),
		"iat":        now.Unix(),
		"exp":        now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokenPair(user userModel.UserModel, now time.Time) (access, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func storeRefreshToken(db *gorm.DB, c *fiber.Ctx, userID uuid.UUID, refresh, refreshSecret string, now time.Time) error {
	return db.Create(&authModel.RefreshToken{
		UserID:    userID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, helpers.MapValidationErrors(err))
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(passwordHash),
	}
	user.SetDefaultValues()

	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", nil)
}

/* ==========================
   LOGIN (email/username + password)
========================== */

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
		return helpers.JsonError(c, fiber.StatusBadRequest, "Identifier dan password wajib diisi")
	}

	var user userModel.UserModel
	if err := db.
		Where("email = ? OR user_name = ?", strings.ToLower(input.Identifier), input.Identifier).
		First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}

	return finishLogin(db, c, user)
}

func finishLogin(db *gorm.DB, c *fiber.Ctx, user userModel.UserModel) error {
	now := nowUTC()
	access, refresh, err := issueTokenPair(user, now)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refreshSecret, _ := getRefreshSecret()
	if err := storeRefreshToken(db, c, user.ID, refresh, refreshSecret, now); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}
	setRefreshCookie(c, refresh, now)

	user.Password = ""
	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user":         user,
	})
}

/* ==========================
   LOGIN GOOGLE (id_token)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID belum diset")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{clientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Gagal decode ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var user userModel.UserModel
	err = db.Where("google_id = ?", googleID).First(&user).Error
	if err != nil {
		// fallback: akun lama yang daftar via email, link google_id-nya
		err = db.Where("email = ?", email).First(&user).Error
	}
	if err != nil {
		// user baru: buat akun dengan password acak (login selalu via Google)
		randomPass, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		user = userModel.UserModel{
			UserName: claimSet.Name,
			Email:    email,
			Password: string(randomPass),
			GoogleID: &googleID,
		}
		user.SetDefaultValues()
		if err := db.Create(&user).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user Google")
		}
	} else if user.GoogleID == nil {
		if err := db.Model(&user).Update("google_id", googleID).Error; err != nil {
			log.Printf("[WARNING] Gagal link google_id: %v", err)
		}
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return finishLogin(db, c, user)
}

/* ==========================
   REFRESH TOKEN (rotate)
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Hash harus dikenal, belum di-revoke, dan belum expired
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	var stored authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&stored).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama, issue pasangan baru
	now := nowUTC()
	if err := db.Model(&stored).Update("revoked_at", now).Error; err != nil {
		log.Printf("[refresh] revoke old token failed: %v", err)
	}

	access, refresh, err := issueTokenPair(user, now)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token baru")
	}
	if err := storeRefreshToken(db, c, user.ID, refresh, refreshSecret, now); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan refresh baru")
	}
	setRefreshCookie(c, refresh, now)

	return helpers.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": access,
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist access token sampai expired-nya lewat
	if tokenString, ok := c.Locals("token_string").(string); ok && tokenString != "" {
		expiredAt := nowUTC().Add(accessTTLDefault)
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
			if expFloat, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(expFloat), 0)
			}
		}
		entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
		if err := db.Create(&entry).Error; err != nil {
			low := strings.ToLower(err.Error())
			if !strings.Contains(low, "duplicate") && !strings.Contains(low, "unique") {
				log.Printf("[logout] blacklist insert failed: %v", err)
			}
		}
	}

	// revoke refresh token aktif milik user
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			hash := computeRefreshHash(refreshCookie, refreshSecret)
			now := nowUTC()
			db.Model(&authModel.RefreshToken{}).
				Where("token_hash = ? AND revoked_at IS NULL", hash).
				Update("revoked_at", now)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helpers.Validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, helpers.MapValidationErrors(err))
	}

	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", string(newHash)).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.JsonUpdated(c, "Password changed successfully", nil)
}
