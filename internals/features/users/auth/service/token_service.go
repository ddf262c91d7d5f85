// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"masjidcare_backend/internals/configs"
	userModel "masjidcare_backend/internals/features/users/user/model"
)

const defaultAccessTTLHours = 24

func accessTokenTTL() time.Duration {
	if raw := configs.GetEnv("ACCESS_TOKEN_TTL_HOURS"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return defaultAccessTTLHours * time.Hour
}

// IssueAccessToken signs an HS256 access token carrying the claims the auth
// middleware reads back into Locals.
func IssueAccessToken(user *userModel.UserModel) (string, time.Time, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET is not configured")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(accessTokenTTL())

	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}
	if user.UserAreaID != nil {
		claims["area_id"] = user.UserAreaID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// TokenExpiry reads exp from a token without verifying the signature. Used
// at logout, where the middleware has already verified the token.
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0).UTC()
		}
	}
	return time.Now().UTC().Add(accessTokenTTL())
}
