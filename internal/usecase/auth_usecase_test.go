package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"wynngrid/internal/domain/user"
	"wynngrid/internal/pkg/googleauth"
	"wynngrid/internal/pkg/jwt"
	"wynngrid/internal/pkg/otp"
	"wynngrid/internal/pkg/password"
)

func newTestAuth(users *mockUserRepo, mailer *mockMailer, verifier googleauth.Verifier, cache ListingCache) *Auth {
	return NewAuthUsecase(
		users,
		jwt.NewHMACService("test-secret", time.Hour),
		otp.NewGenerator(),
		mailer,
		verifier,
		cache,
		discardLogger(),
	)
}

func TestSignup_RejectsWeakPassword(t *testing.T) {
	users := newMockUserRepo()
	uc := newTestAuth(users, &mockMailer{}, mockVerifier{}, nil)

	err := uc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "abcdef"})
	if !errors.Is(err, password.ErrPolicy) {
		t.Fatalf("expected ErrPolicy, got %v", err)
	}
	if len(users.byID) != 0 {
		t.Fatalf("no account should be created")
	}
}

func TestSignup_CreatesUnverifiedAccountAndSendsOTP(t *testing.T) {
	users := newMockUserRepo()
	mailer := &mockMailer{}
	uc := newTestAuth(users, mailer, mockVerifier{}, nil)

	err := uc.Signup(context.Background(), SignupInput{
		FirstName: "Ada", LastName: "L", Email: " a@b.com ", Password: "Abcde1!",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, err := users.GetByEmail(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("account not created: %v", err)
	}
	if u.IsVerified {
		t.Fatalf("account must start unverified")
	}
	if u.UserType != user.TypeStandard {
		t.Fatalf("expected standard account, got %q", u.UserType)
	}
	if u.OTP == nil || u.OTPExpiry == nil {
		t.Fatalf("expected OTP pair to be set")
	}
	if u.PasswordHash == "Abcde1!" {
		t.Fatalf("password must be hashed")
	}
	if len(mailer.sent) != 1 || mailer.sent[0].To != "a@b.com" {
		t.Fatalf("expected one OTP mail, got %+v", mailer.sent)
	}
}

func TestSignup_VerifiedDuplicateRejected(t *testing.T) {
	existing := user.User{ID: uuid.New(), Email: "a@b.com", IsVerified: true}
	uc := newTestAuth(newMockUserRepo(existing), &mockMailer{}, mockVerifier{}, nil)

	err := uc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "Abcde1!"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestSignup_UnverifiedResignupOverwritesInPlace(t *testing.T) {
	id := uuid.New()
	code := "111111"
	expiry := time.Now().Add(otp.TTL)
	existing := user.User{
		ID: id, Email: "a@b.com", FirstName: "Old", IsVerified: false,
		OTP: &code, OTPExpiry: &expiry,
	}
	users := newMockUserRepo(existing)
	uc := newTestAuth(users, &mockMailer{}, mockVerifier{}, nil)

	err := uc.Signup(context.Background(), SignupInput{
		FirstName: "New", Email: "a@b.com", Password: "Abcde1!",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(users.byID) != 1 {
		t.Fatalf("re-signup must not create a second account")
	}
	u := users.byID[id]
	if u.FirstName != "New" {
		t.Fatalf("expected overwritten name, got %q", u.FirstName)
	}
	if u.OTP == nil || *u.OTP == "111111" {
		t.Fatalf("expected a fresh OTP")
	}
}

func TestVerifyOTP_SuccessIssuesTokenAndClearsPair(t *testing.T) {
	id := uuid.New()
	code := "123456"
	expiry := time.Now().Add(otp.TTL)
	users := newMockUserRepo(user.User{
		ID: id, Email: "a@b.com", OTP: &code, OTPExpiry: &expiry,
	})
	uc := newTestAuth(users, &mockMailer{}, mockVerifier{}, nil)

	token, err := uc.VerifyOTP(context.Background(), "a@b.com", "123456")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}

	u := users.byID[id]
	if !u.IsVerified {
		t.Fatalf("expected account to be verified")
	}
	if u.OTP != nil || u.OTPExpiry != nil {
		t.Fatalf("expected OTP pair to be cleared")
	}
}

func TestVerifyOTP_MismatchAndExpiry(t *testing.T) {
	code := "123456"
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(otp.TTL)

	cases := []struct {
		name      string
		stored    *string
		expiry    *time.Time
		presented string
	}{
		{"mismatch", &code, &future, "999999"},
		{"expired", &code, &past, "123456"},
		{"no pair stored", nil, nil, "123456"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := newMockUserRepo(user.User{
				ID: uuid.New(), Email: "a@b.com", OTP: tc.stored, OTPExpiry: tc.expiry,
			})
			uc := newTestAuth(users, &mockMailer{}, mockVerifier{}, nil)

			if _, err := uc.VerifyOTP(context.Background(), "a@b.com", tc.presented); !errors.Is(err, ErrInvalidOTP) {
				t.Fatalf("expected ErrInvalidOTP, got %v", err)
			}
		})
	}
}

func TestVerifyOTP_UnknownEmail(t *testing.T) {
	uc := newTestAuth(newMockUserRepo(), &mockMailer{}, mockVerifier{}, nil)
	if _, err := uc.VerifyOTP(context.Background(), "ghost@b.com", "123456"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	hash, _ := password.Hash("Abcde1!")
	verified := user.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: hash, IsVerified: true}
	unverified := user.User{ID: uuid.New(), Email: "u@b.com", PasswordHash: hash, IsVerified: false}
	uc := newTestAuth(newMockUserRepo(verified, unverified), &mockMailer{}, mockVerifier{}, nil)

	if _, err := uc.Login(context.Background(), "u@b.com", "Abcde1!"); !errors.Is(err, ErrUnverifiedEmail) {
		t.Fatalf("expected ErrUnverifiedEmail, got %v", err)
	}
	if _, err := uc.Login(context.Background(), "a@b.com", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	token, err := uc.Login(context.Background(), "a@b.com", "Abcde1!")
	if err != nil || token == "" {
		t.Fatalf("expected token, got %q err %v", token, err)
	}
}

func TestResetPassword_RehashesAndClearsPair(t *testing.T) {
	id := uuid.New()
	code := "123456"
	expiry := time.Now().Add(otp.TTL)
	oldHash, _ := password.Hash("Olddd1!")
	users := newMockUserRepo(user.User{
		ID: id, Email: "a@b.com", PasswordHash: oldHash, IsVerified: true,
		OTP: &code, OTPExpiry: &expiry,
	})
	uc := newTestAuth(users, &mockMailer{}, mockVerifier{}, nil)

	if err := uc.ResetPassword(context.Background(), "a@b.com", "123456", "Newww1!"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u := users.byID[id]
	if u.OTP != nil || u.OTPExpiry != nil {
		t.Fatalf("expected OTP pair to be cleared")
	}
	if !password.Compare(u.PasswordHash, "Newww1!") {
		t.Fatalf("expected new password to match")
	}
}

func TestDeleteAccount(t *testing.T) {
	hash, _ := password.Hash("Abcde1!")
	id := uuid.New()
	users := newMockUserRepo(user.User{ID: id, Email: "a@b.com", PasswordHash: hash, IsVerified: true})
	cache := newMockCache()
	uc := newTestAuth(users, &mockMailer{}, mockVerifier{}, cache)

	if err := uc.DeleteAccount(context.Background(), "a@b.com", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if err := uc.DeleteAccount(context.Background(), "a@b.com", "Abcde1!"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(users.deleted) != 1 || users.deleted[0] != id {
		t.Fatalf("expected account %s deleted, got %v", id, users.deleted)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != ProUsersCacheKey {
		t.Fatalf("expected listing cache invalidation, got %v", cache.deleted)
	}
}

func TestLogout(t *testing.T) {
	uc := newTestAuth(newMockUserRepo(), &mockMailer{}, mockVerifier{}, nil)
	if err := uc.Logout(context.Background(), ""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if err := uc.Logout(context.Background(), "some-token"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestGoogleAuth_NewUser(t *testing.T) {
	users := newMockUserRepo()
	uc := newTestAuth(users, &mockMailer{}, mockVerifier{
		identity: googleauth.Identity{Email: "g@b.com", FirstName: "Gee", LastName: "User"},
	}, nil)

	result, err := uc.GoogleAuth(context.Background(), "id-token")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.IsNewUser {
		t.Fatalf("expected new user")
	}
	if result.Token == "" {
		t.Fatalf("expected a session token")
	}

	u, err := users.GetByEmail(context.Background(), "g@b.com")
	if err != nil {
		t.Fatalf("account not created: %v", err)
	}
	if !u.IsVerified {
		t.Fatalf("federated accounts must be pre-verified")
	}
	if u.PasswordHash != "" {
		t.Fatalf("federated accounts must have no password hash")
	}
}

func TestGoogleAuth_ExistingUser(t *testing.T) {
	existing := user.User{ID: uuid.New(), Email: "g@b.com", IsVerified: true, PasswordHash: "secret"}
	uc := newTestAuth(newMockUserRepo(existing), &mockMailer{}, mockVerifier{
		identity: googleauth.Identity{Email: "g@b.com"},
	}, nil)

	result, err := uc.GoogleAuth(context.Background(), "id-token")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.IsNewUser {
		t.Fatalf("expected existing user")
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("returned user must be sanitized")
	}
}

func TestGoogleAuth_InvalidToken(t *testing.T) {
	uc := newTestAuth(newMockUserRepo(), &mockMailer{}, mockVerifier{err: errMockFailure}, nil)
	if _, err := uc.GoogleAuth(context.Background(), "bad"); !errors.Is(err, ErrInvalidGoogleToken) {
		t.Fatalf("expected ErrInvalidGoogleToken, got %v", err)
	}
}

func TestSignup_MailFailureIsNotFatal(t *testing.T) {
	users := newMockUserRepo()
	uc := newTestAuth(users, &mockMailer{err: errMockFailure}, mockVerifier{}, nil)

	err := uc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "Abcde1!"})
	if err != nil {
		t.Fatalf("mail failure must not fail signup: %v", err)
	}
	if len(users.byID) != 1 {
		t.Fatalf("account should still be created")
	}
}
