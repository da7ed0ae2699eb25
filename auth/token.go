package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/patiponrmutl/SchoolMS/models"
)

// Claims carried by every access token.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 bearer tokens. The signing secret and
// TTL are fixed at construction; there is no revocation and no key
// rotation, so a token stays valid until its exp passes.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user expiring ttl from now. The subject is
// the record id in decimal; email and role ride along as claims.
func (t *Tokens) Issue(u *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature integrity and expiry. A stale token yields
// ErrTokenExpired; anything else wrong with it yields ErrTokenInvalid.
// Only HMAC signatures are accepted, so a token re-signed under another
// algorithm fails verification.
func (t *Tokens) Verify(signed string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(signed, &Claims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
