package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"optiroute/types"
)

// Token types, embedded in claims so an access token cannot stand in for a
// refresh token or the other way around.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims carried in both access and refresh tokens.
type Claims struct {
	UID       string     `json:"uid"`
	Email     string     `json:"email"`
	Role      types.Role `json:"role"`
	TokenType string     `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager handles token generation and validation.
type JWTManager struct {
	secretKey         []byte
	tokenExpiration   time.Duration
	refreshExpiration time.Duration
}

func NewJWTManager(secretKey string, tokenExpiration, refreshExpiration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:         []byte(secretKey),
		tokenExpiration:   tokenExpiration,
		refreshExpiration: refreshExpiration,
	}
}

// GenerateToken issues an access token for a user.
func (m *JWTManager) GenerateToken(user *types.User) (string, error) {
	return m.sign(user, TokenTypeAccess, m.tokenExpiration)
}

// GenerateRefreshToken issues a refresh token with longer expiration.
func (m *JWTManager) GenerateRefreshToken(user *types.User) (string, error) {
	return m.sign(user, TokenTypeRefresh, m.refreshExpiration)
}

func (m *JWTManager) sign(user *types.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:       user.UID,
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "optiroute-api",
			Subject:   user.UID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signedToken, nil
}

// ValidateToken parses and verifies an access token, returning its claims.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, TokenTypeAccess)
}

// ValidateRefreshToken parses and verifies a refresh token.
func (m *JWTManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, TokenTypeRefresh)
}

func (m *JWTManager) validate(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("token is not a %s token", wantType)
	}
	return claims, nil
}

// ExtractToken pulls the token out of an "Authorization: Bearer <token>"
// header value.
func ExtractToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("invalid authorization header format")
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}
