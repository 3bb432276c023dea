package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secret = "test-secret-key"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("testpass123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "testpass123" {
		t.Fatal("password stored in clear")
	}
	if !CheckPassword(hash, "testpass123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrongpassword") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("pr-123", secret)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.PractitionerID != "pr-123" {
		t.Errorf("practitioner id: %q", claims.PractitionerID)
	}
	if exp := claims.ExpiresAt.Time; time.Until(exp) < 6*24*time.Hour {
		t.Errorf("expiry too short: %v", exp)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tok, _ := MakeToken("pr-123", secret)
	if _, err := ParseToken(tok, "another-secret"); err == nil {
		t.Error("token verified with the wrong secret")
	}
}

func TestTokenTampered(t *testing.T) {
	tok, _ := MakeToken("pr-123", secret)
	parts := strings.Split(tok, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	if _, err := ParseToken(strings.Join(parts, "."), secret); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestTokenExpired(t *testing.T) {
	c := Claims{
		PractitionerID: "pr-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "pr-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(tok, secret); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTokenRejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must never verify
	c := Claims{PractitionerID: "pr-123"}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(tok, secret); err == nil {
		t.Error("unsigned token accepted")
	}
}

func TestTokenSubjectFallback(t *testing.T) {
	// tokens minted with only the standard subject claim still resolve
	c := jwt.RegisteredClaims{
		Subject:   "pr-456",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.PractitionerID != "pr-456" {
		t.Errorf("subject fallback: %q", claims.PractitionerID)
	}
}

func TestTokenWithoutIdentity(t *testing.T) {
	c := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if _, err := ParseToken(tok, secret); err == nil {
		t.Error("token without any identity accepted")
	}
}
