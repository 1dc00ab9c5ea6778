package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/biztime"
)

// Claims is the signed identity claim carried by every request: the user
// and the role the access gate checks against. Role is fixed at token
// issue time and immutable for the session.
type Claims struct {
	UserID uint               `json:"user_id"`
	Role   authorization.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret         []byte
	accessExpHours int
}

func NewJWTService(secret string, accessExpHours int) *JWTService {
	return &JWTService{
		secret:         []byte(secret),
		accessExpHours: accessExpHours,
	}
}

func (s *JWTService) Generate(userID uint, role authorization.Role) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpHours) * time.Hour)

	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
