package googleauth

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/api/idtoken"
)

var ErrInvalidToken = errors.New("invalid google token")

// Identity is the subset of a verified Google ID-token payload this service
// needs.
type Identity struct {
	Email     string
	FirstName string
	LastName  string
}

type Verifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

// GoogleVerifier validates ID tokens against the configured OAuth client ID.
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return identityFromClaims(payload.Claims)
}

func identityFromClaims(claims map[string]any) (Identity, error) {
	email := claimString(claims, "email")
	if email == "" {
		return Identity{}, ErrInvalidToken
	}

	first := claimString(claims, "given_name")
	last := claimString(claims, "family_name")

	// Fallback chain: given/family name, then the split full name, then the
	// local part of the email address.
	if first == "" {
		full := claimString(claims, "name")
		if full != "" {
			parts := strings.Fields(full)
			first = parts[0]
			if len(parts) > 1 {
				last = strings.Join(parts[1:], " ")
			}
		}
	}
	if first == "" {
		first = strings.SplitN(email, "@", 2)[0]
	}

	return Identity{Email: email, FirstName: first, LastName: last}, nil
}

func claimString(claims map[string]any, key string) string {
	v, ok := claims[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
