package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/security"
)

// Claims carries the user id under the "id" key the web client already reads
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// JWTIssuer signs HS256 session tokens
type JWTIssuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

var _ security.TokenIssuer = (*JWTIssuer)(nil)

// NewJWTIssuer creates an issuer. A zero ttl issues tokens without an expiry.
func NewJWTIssuer(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl < 0 {
		return nil, fmt.Errorf("invalid token ttl: %s", ttl)
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, timeProvider: timeProvider}, nil
}

// Issue returns a signed token for userID
func (i *JWTIssuer) Issue(userID uuid.UUID) (string, error) {
	now := i.timeProvider.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID.String(),
	}
	if i.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies the token and returns the user id it was issued for
func (i *JWTIssuer) Parse(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", errs.ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, errs.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", errs.ErrInvalidToken)
	}
	return userID, nil
}
