package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"wynngrid/internal/domain/user"
	"wynngrid/internal/pkg/googleauth"
	"wynngrid/internal/pkg/jwt"
	"wynngrid/internal/pkg/mail"
	"wynngrid/internal/pkg/otp"
	"wynngrid/internal/pkg/password"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUnverifiedEmail        = errors.New("email not verified")
	ErrInvalidPassword        = errors.New("invalid password")
	ErrInvalidOTP             = errors.New("invalid or expired otp")
	ErrMissingToken           = errors.New("token is required")
	ErrInvalidGoogleToken     = errors.New("invalid google token")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type GoogleAuthResult struct {
	Token     string
	User      user.User
	IsNewUser bool
}

type AuthUsecase interface {
	Signup(ctx context.Context, in SignupInput) error
	VerifyOTP(ctx context.Context, email, code string) (string, error)
	Login(ctx context.Context, email, pw string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	DeleteAccount(ctx context.Context, email, pw string) error
	Logout(ctx context.Context, token string) error
	GoogleAuth(ctx context.Context, idToken string) (GoogleAuthResult, error)
}

type Auth struct {
	users    user.Repository
	tokens   jwt.Service
	codes    *otp.Generator
	mailer   mail.Mailer
	verifier googleauth.Verifier
	cache    ListingCache
	logger   *log.Logger

	now func() time.Time
}

func NewAuthUsecase(users user.Repository, tokens jwt.Service, codes *otp.Generator, mailer mail.Mailer, verifier googleauth.Verifier, cache ListingCache, logger *log.Logger) *Auth {
	if codes == nil {
		codes = otp.NewGenerator()
	}
	return &Auth{
		users:    users,
		tokens:   tokens,
		codes:    codes,
		mailer:   mailer,
		verifier: verifier,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

func (a *Auth) Signup(ctx context.Context, in SignupInput) error {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return ErrInvalidInput
	}
	if err := password.Validate(in.Password); err != nil {
		return err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return ErrInternal
	}

	code, expiry, err := a.codes.Generate()
	if err != nil {
		return ErrInternal
	}

	existing, err := a.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsVerified {
			return ErrEmailAlreadyRegistered
		}
		// Re-signup while unverified overwrites in place; no second account.
		existing.FirstName = in.FirstName
		existing.LastName = in.LastName
		existing.PasswordHash = hash
		existing.OTP = &code
		existing.OTPExpiry = &expiry
		if err := a.users.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, user.ErrNotFound):
		u := user.User{
			ID:           uuid.New(),
			Email:        email,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			PasswordHash: hash,
			UserType:     user.TypeStandard,
			IsVerified:   false,
			OTP:          &code,
			OTPExpiry:    &expiry,
		}
		if err := a.users.Create(ctx, u); err != nil {
			return err
		}
	default:
		return err
	}

	mail.SendBestEffort(ctx, a.mailer, a.logger, email,
		"Verify your email", fmt.Sprintf("Your OTP is: %s", code))
	return nil
}

func (a *Auth) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !otp.Valid(u.OTP, u.OTPExpiry, code, a.now()) {
		return "", ErrInvalidOTP
	}

	u.IsVerified = true
	u.OTP = nil
	u.OTPExpiry = nil
	if err := a.users.Update(ctx, u); err != nil {
		return "", err
	}

	token, err := a.tokens.GenerateToken(u.ID, u.UserType)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

func (a *Auth) Login(ctx context.Context, email, pw string) (string, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !u.IsVerified {
		return "", ErrUnverifiedEmail
	}
	if !password.Compare(u.PasswordHash, pw) {
		return "", ErrInvalidPassword
	}

	token, err := a.tokens.GenerateToken(u.ID, u.UserType)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, expiry, err := a.codes.Generate()
	if err != nil {
		return ErrInternal
	}

	u.OTP = &code
	u.OTPExpiry = &expiry
	if err := a.users.Update(ctx, u); err != nil {
		return err
	}

	mail.SendBestEffort(ctx, a.mailer, a.logger, email,
		"Reset Password", fmt.Sprintf("Your password reset OTP is: %s", code))
	return nil
}

func (a *Auth) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := password.Validate(newPassword); err != nil {
		return err
	}

	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !otp.Valid(u.OTP, u.OTPExpiry, code, a.now()) {
		return ErrInvalidOTP
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return ErrInternal
	}

	u.PasswordHash = hash
	u.OTP = nil
	u.OTPExpiry = nil
	return a.users.Update(ctx, u)
}

func (a *Auth) DeleteAccount(ctx context.Context, email, pw string) error {
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !password.Compare(u.PasswordHash, pw) {
		return ErrInvalidPassword
	}

	if err := a.users.DeleteAccount(ctx, u.ID); err != nil {
		return err
	}

	invalidateProUsers(ctx, a.cache)
	return nil
}

// Logout is a stateless acknowledgement; no revocation list is kept.
func (a *Auth) Logout(_ context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}
	return nil
}

func (a *Auth) GoogleAuth(ctx context.Context, idToken string) (GoogleAuthResult, error) {
	ident, err := a.verifier.Verify(ctx, idToken)
	if err != nil {
		return GoogleAuthResult{}, ErrInvalidGoogleToken
	}

	u, err := a.users.GetByEmail(ctx, ident.Email)
	switch {
	case err == nil:
		token, err := a.tokens.GenerateToken(u.ID, u.UserType)
		if err != nil {
			return GoogleAuthResult{}, ErrInternal
		}
		return GoogleAuthResult{Token: token, User: sanitizeUser(u), IsNewUser: false}, nil

	case errors.Is(err, user.ErrNotFound):
		u = user.User{
			ID:         uuid.New(),
			Email:      ident.Email,
			FirstName:  ident.FirstName,
			LastName:   ident.LastName,
			UserType:   user.TypeStandard,
			IsVerified: true,
		}
		if err := a.users.Create(ctx, u); err != nil {
			return GoogleAuthResult{}, err
		}
		token, err := a.tokens.GenerateToken(u.ID, u.UserType)
		if err != nil {
			return GoogleAuthResult{}, ErrInternal
		}
		return GoogleAuthResult{Token: token, User: sanitizeUser(u), IsNewUser: true}, nil

	default:
		return GoogleAuthResult{}, err
	}
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	u.OTP = nil
	u.OTPExpiry = nil
	return u
}
