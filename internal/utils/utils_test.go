package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

func TestHashAndVerifyPassword(t *testing.T) {
    hash, err := HashPassword("guest123", 4)
    if err != nil {
        t.Fatalf("HashPassword failed: %v", err)
    }
    if hash == "guest123" {
        t.Fatal("hash equals the plain password")
    }
    if !VerifyPassword(hash, "guest123") {
        t.Fatal("correct password did not verify")
    }
    if VerifyPassword(hash, "wrong") {
        t.Fatal("wrong password verified")
    }
}

func TestVerifyPasswordBadHash(t *testing.T) {
    if VerifyPassword("not-a-bcrypt-hash", "guest123") {
        t.Fatal("garbage hash verified")
    }
}

func TestNewAccessTokenClaims(t *testing.T) {
    const secret = "test-secret"
    at, err := NewAccessToken(secret, 42, "guest", "guest@easestay.com", 24)
    if err != nil {
        t.Fatalf("NewAccessToken failed: %v", err)
    }

    tok, err := jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        t.Fatalf("issued token did not parse: %v", err)
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        t.Fatal("claims are not MapClaims")
    }
    if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
        t.Fatalf("sub claim = %v, want 42", claims["sub"])
    }
    if claims["role"] != "guest" {
        t.Fatalf("role claim = %v, want guest", claims["role"])
    }
    if claims["email"] != "guest@easestay.com" {
        t.Fatalf("email claim = %v, want guest@easestay.com", claims["email"])
    }

    // 24h TTL, allow generous slack for a slow test runner.
    wantExp := time.Now().UTC().Add(24 * time.Hour)
    if at.Exp.Before(wantExp.Add(-time.Minute)) || at.Exp.After(wantExp.Add(time.Minute)) {
        t.Fatalf("expiry = %v, want about %v", at.Exp, wantExp)
    }
}

func TestNewAccessTokenRejectedWithWrongSecret(t *testing.T) {
    at, err := NewAccessToken("secret-a", 1, "guest", "a@b.c", 1)
    if err != nil {
        t.Fatal(err)
    }
    tok, err := jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
        return []byte("secret-b"), nil
    })
    if err == nil && tok.Valid {
        t.Fatal("token verified with the wrong secret")
    }
}
