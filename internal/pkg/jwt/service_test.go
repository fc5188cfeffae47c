package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_GenerateAndValidate(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "pro")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.UserType != "pro" {
		t.Fatalf("expected user type pro, got %q", claims.UserType)
	}
	if claims.Subject != userID.String() {
		t.Fatalf("expected subject %s, got %s", userID, claims.Subject)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken(uuid.New(), "standard")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	token, err := NewHMACService("secret-a", time.Hour).GenerateToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
