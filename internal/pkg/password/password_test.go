package password

import (
	"errors"
	"testing"
)

func TestValidate_Policy(t *testing.T) {
	cases := []struct {
		name string
		pw   string
		ok   bool
	}{
		{"valid", "Abcde1!", true},
		{"minimum length", "Ab1@cd", true},
		{"too short", "Ab1@c", false},
		{"no uppercase", "abcde1!", false},
		{"no lowercase", "ABCDE1!", false},
		{"no digit", "Abcdef!", false},
		{"no special", "Abcdef1", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.pw)
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrPolicy) {
				t.Fatalf("expected ErrPolicy, got %v", err)
			}
		})
	}
}

func TestHashCompare(t *testing.T) {
	hash, err := Hash("Abcde1!")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hash == "Abcde1!" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !Compare(hash, "Abcde1!") {
		t.Fatalf("expected match")
	}
	if Compare(hash, "Abcde1?") {
		t.Fatalf("expected mismatch")
	}
}
