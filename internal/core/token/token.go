// Package token issues and verifies the signed bearer credentials that
// prove a prior successful login. Tokens are HS256 JWTs carrying the
// account id, name, and role; there is no refresh or revocation — rotating
// the signing secret invalidates every outstanding token at once.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

// Rejection reasons. Each maps to a distinct client-visible message so
// callers can tell "log in again" apart from "not authorized".
var (
	ErrMissing = errors.New("missing bearer token")
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("invalid token")
)

// Identity is the decoded claim set of a valid token. It lives for the
// duration of a single request and is never persisted.
type Identity struct {
	AccountID string
	FirstName string
	LastName  string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type claims struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer mints identity tokens. The secret and TTL come from startup
// configuration and are never mutated afterwards.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the account's identity claims.
func (i *Issuer) Issue(account *domain.Account) (string, error) {
	now := time.Now().UTC()
	c := claims{
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// TTL reports the configured token lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Verifier validates presented bearer credentials.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyHeader extracts and verifies the token from an Authorization
// header value. The header must be exactly "Bearer <token>"; any other
// shape is ErrMissing.
func (v *Verifier) VerifyHeader(header string) (*Identity, error) {
	if header == "" {
		return nil, ErrMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, ErrMissing
	}
	return v.Verify(parts[1])
}

// Verify parses and validates a raw token string, producing the decoded
// Identity or one of the three rejection reasons.
func (v *Verifier) Verify(raw string) (*Identity, error) {
	var c claims
	tkn, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tkn.Valid {
		return nil, ErrInvalid
	}

	role, err := domain.ParseRole(c.Role)
	if err != nil {
		return nil, ErrInvalid
	}
	if c.Subject == "" || c.ExpiresAt == nil {
		return nil, ErrInvalid
	}

	ident := &Identity{
		AccountID: c.Subject,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Role:      role,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		ident.IssuedAt = c.IssuedAt.Time
	}
	return ident, nil
}
