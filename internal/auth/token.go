package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "tesoreria-backend"

var (
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	errMissingBearer         = fmt.Errorf("%w: the Authorization header must contain a bearer token", ErrInvalidOrExpiredToken)
)

// Claims are the JWT claims of a session token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate returns a signed token for the treasurer with the given ID.
func (tm *TokenManager) Generate(treasurerID uuid.UUID) (string, error) {
	now := tm.now()
	claims := Claims{
		UserID: treasurerID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   treasurerID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Validate verifies the token and returns the ID of the treasurer it was
// issued for.
//
// All failures wrap ErrInvalidOrExpiredToken.
func (tm *TokenManager) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidOrExpiredToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	}

	return id, nil
}

// ExtractToken returns the token from an Authorization header value.
func ExtractToken(header string) (string, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", errMissingBearer
	}

	return strings.TrimSpace(token), nil
}
