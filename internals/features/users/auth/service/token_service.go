package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"ktx_backend/internals/configs"
	"ktx_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// GenerateAccessToken signs the short-lived token the middleware verifies.
// student_id/manager_id ride along so controllers can scope queries without
// another lookup.
func GenerateAccessToken(u *model.User) (string, error) {
	return signToken(u, configs.JWTSecret, AccessTokenTTL)
}

func GenerateRefreshToken(u *model.User) (string, error) {
	return signToken(u, configs.JWTRefreshSecret, RefreshTokenTTL)
}

func signToken(u *model.User, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   u.UserID.String(),
		"role": u.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if u.UserStudentID != nil {
		claims["student_id"] = u.UserStudentID.String()
	}
	if u.UserManagerID != nil {
		claims["manager_id"] = u.UserManagerID.String()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// ParseRefreshToken verifies a refresh token and returns the user id.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	secret := configs.JWTRefreshSecret
	if secret == "" {
		return uuid.Nil, errors.New("jwt refresh secret not configured")
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid refresh token claims")
	}
	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id in refresh token")
	}
	return id, nil
}

// TokenExpiry extracts exp from a signed token without re-verifying; used
// when blacklisting on logout so the row can be cleaned once the token is
// dead anyway.
func TokenExpiry(raw string) time.Time {
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Now().Add(AccessTokenTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(AccessTokenTTL)
}
