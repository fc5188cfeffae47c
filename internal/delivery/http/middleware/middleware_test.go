package middleware

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"case insensitive scheme", "bearer tok", "tok", true},
		{"empty", "", "", false},
		{"missing token", "Bearer ", "", false},
		{"wrong scheme", "Basic abc", "", false},
		{"no scheme", "abc.def.ghi", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := bearerTokenFromHeader(tc.header)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if token != tc.token {
				t.Fatalf("expected token %q, got %q", tc.token, token)
			}
		})
	}
}

func TestNormalizeError(t *testing.T) {
	status, msg, _ := normalizeError(NewAppError(fiber.StatusNotFound, "Profile not found", nil, nil))
	if status != fiber.StatusNotFound || msg != "Profile not found" {
		t.Fatalf("unexpected %d %q", status, msg)
	}

	// Internal detail never reaches the client.
	status, msg, _ = normalizeError(NewAppError(fiber.StatusInternalServerError, "pq: connection refused", nil, nil))
	if status != fiber.StatusInternalServerError {
		t.Fatalf("unexpected status %d", status)
	}
	if msg == "pq: connection refused" {
		t.Fatalf("internal message must not leak")
	}

	status, _, _ = normalizeError(errors.New("some unknown failure"))
	if status != fiber.StatusInternalServerError {
		t.Fatalf("unknown errors must map to 500, got %d", status)
	}

	status, msg, _ = normalizeError(fiber.ErrUnauthorized)
	if status != fiber.StatusUnauthorized || msg == "" {
		t.Fatalf("unexpected %d %q", status, msg)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewAppError(fiber.StatusBadRequest, "Bad request", nil, cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected unwrap to reach cause")
	}
}
