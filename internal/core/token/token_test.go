package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:        "acc_1",
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria@gbox.ncf.edu.ph",
		Role:      domain.RoleStudent,
	}
}

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	verifier := NewVerifier("secret")

	raw, err := issuer.Issue(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	ident, err := verifier.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ident.AccountID != "acc_1" {
		t.Fatalf("unexpected account id: %s", ident.AccountID)
	}
	if ident.Role != domain.RoleStudent {
		t.Fatalf("unexpected role: %s", ident.Role)
	}
	if ident.FirstName != "Maria" || ident.LastName != "Santos" {
		t.Fatalf("unexpected name: %s %s", ident.FirstName, ident.LastName)
	}
	if !ident.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", ident.ExpiresAt)
	}
}

func TestVerifyHeader(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	verifier := NewVerifier("secret")

	raw, err := issuer.Issue(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.VerifyHeader("Bearer " + raw); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	// Scheme comparison is case-insensitive.
	if _, err := verifier.VerifyHeader("bearer " + raw); err != nil {
		t.Fatalf("expected success for lowercase scheme, got %v", err)
	}

	for _, header := range []string{"", raw, "Basic " + raw, "Bearer"} {
		if _, err := verifier.VerifyHeader(header); err != ErrMissing {
			t.Fatalf("header %q: expected ErrMissing, got %v", header, err)
		}
	}
}

func TestVerify_Expired(t *testing.T) {
	verifier := NewVerifier("secret")

	now := time.Now().UTC()
	c := claims{
		Role: string(domain.RoleStudent),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc_1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := verifier.Verify(raw); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	verifier := NewVerifier("secret")

	raw, err := issuer.Issue(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip a byte in the payload segment.
	parts := strings.Split(raw, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := verifier.Verify(tampered); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	verifier := NewVerifier("rotated")

	raw, err := issuer.Issue(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(raw); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid after secret rotation, got %v", err)
	}
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	verifier := NewVerifier("secret")

	// "none" algorithm must never be accepted.
	c := claims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.Verify(raw); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_UnknownRole(t *testing.T) {
	verifier := NewVerifier("secret")

	c := claims{
		Role: "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.Verify(raw); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid for unknown role, got %v", err)
	}
}
