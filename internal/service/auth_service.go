package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/profolio/profolio/internal/domain"
	"github.com/profolio/profolio/internal/observability"
	"github.com/profolio/profolio/internal/repository"
	"github.com/profolio/profolio/internal/security"

	"golang.org/x/sync/errgroup"
)

const (
	verificationCodeLength   = 8
	verificationCodeValidity = 5 * time.Minute
)

type AuthService struct {
	hasher           security.CredentialHasher
	tokenSvc         *TokenService
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	profileRepo      repository.ProfileRepository
	mailer           MailSender
	storage          StorageService
}

func NewAuthService(
	hasher security.CredentialHasher,
	tokenSvc *TokenService,
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationRepository,
	profileRepo repository.ProfileRepository,
	mailer MailSender,
	storage StorageService,
) *AuthService {
	return &AuthService{
		hasher:           hasher,
		tokenSvc:         tokenSvc,
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		profileRepo:      profileRepo,
		mailer:           mailer,
		storage:          storage,
	}
}

type LoginResult struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
	Nickname     string `json:"nickname"`
	IsAdmin      bool   `json:"is_admin"`
	ImageURL     string `json:"image_url,omitempty"`
}

type RefreshResult struct {
	AccessToken string `json:"-"`
	Nickname    string `json:"nickname"`
	IsAdmin     bool   `json:"is_admin"`
}

// RequestCode starts email ownership verification. Any prior unconfirmed
// record for the email is superseded; the insert and the mail dispatch run
// concurrently and both must succeed. The code never appears in a response.
func (s *AuthService) RequestCode(ctx context.Context, email string) error {
	if email == "" {
		return ErrInvalidRequest
	}
	if !security.ValidEmail(email) {
		return ErrInvalidEmailFormat
	}
	code, err := security.GenerateCode(verificationCodeLength)
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.verificationRepo.DeleteUnconfirmed(email); err != nil {
			return fmt.Errorf("supersede verification records: %w", err)
		}
		return s.verificationRepo.Create(&domain.EmailVerification{
			Email:    email,
			Code:     code,
			IssuedAt: time.Now(),
		})
	})
	g.Go(func() error {
		return s.mailer.Send(gctx, MailMessage{
			To:       email,
			Subject:  "profolio email verification",
			HTMLBody: fmt.Sprintf("<p>Your verification code is <b>%s</b>. It expires in %d minutes.</p>", code, int(verificationCodeValidity.Minutes())),
		})
	})
	if err := g.Wait(); err != nil {
		// Partial effects (sent mail without a stored record, or the
		// reverse) are accepted; the next request supersedes them.
		return fmt.Errorf("request verification code: %w", err)
	}
	observability.RecordVerificationIssued(ctx)
	return nil
}

// ConfirmCode completes verification. A missing record and a mismatched code
// are the same error so the endpoint cannot be used as a guessing oracle.
// The window is strict: at exactly five minutes the code is expired.
func (s *AuthService) ConfirmCode(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return ErrInvalidRequest
	}
	rec, err := s.verificationRepo.FindUnconfirmed(email, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.RecordVerificationConfirm(ctx, "invalid")
			return ErrInvalidCode
		}
		return fmt.Errorf("lookup verification record: %w", err)
	}
	now := time.Now()
	if now.Sub(rec.IssuedAt) >= verificationCodeValidity {
		observability.RecordVerificationConfirm(ctx, "expired")
		return ErrExpiredCode
	}
	if err := s.verificationRepo.MarkConfirmed(rec.ID, now); err != nil {
		// A concurrent confirmation already flipped the record; both
		// attempts succeeding is the accepted idempotent outcome.
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("confirm verification record: %w", err)
		}
	}
	observability.RecordVerificationConfirm(ctx, "success")
	return nil
}

// Login checks credentials and issues the token pair. With the deterministic
// digest scheme the check is a single filtered lookup; salted schemes fetch
// by email and compare. Failure is a single generic error either way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidRequest
	}
	user, err := s.findByCredentials(email, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.RecordAuthLogin(ctx, "failure")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup: %w", err)
	}

	access, refresh, err := s.tokenSvc.IssuePair(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token pair: %w", err)
	}

	result := &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		Nickname:     user.Nickname,
		IsAdmin:      user.IsAdmin,
	}
	// Image resolution is best-effort; a missing profile row is not an error.
	if profile, err := s.profileRepo.FindByUserEmail(user.Email); err == nil && profile.ImageKey != "" {
		if url, err := s.storage.ResolveImageURL(ctx, profile.ImageKey); err == nil {
			result.ImageURL = url
		}
	}
	observability.RecordAuthLogin(ctx, "success")
	return result, nil
}

func (s *AuthService) findByCredentials(email, password string) (*domain.User, error) {
	if s.hasher.Deterministic() {
		digest, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		return s.userRepo.FindByEmailAndDigest(email, digest)
	}
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	ok, err := s.hasher.Compare(user.PasswordDigest, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

// RefreshAccessToken mints a new access token for an already-verified
// refresh token subject. The caller has validated signature, purpose and
// expiry; this flow only re-checks that the account still exists.
func (s *AuthService) RefreshAccessToken(ctx context.Context, email string) (*RefreshResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.RecordAuthRefresh(ctx, "account_gone")
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("refresh account lookup: %w", err)
	}
	access, err := s.tokenSvc.IssueAccess(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	observability.RecordAuthRefresh(ctx, "success")
	return &RefreshResult{AccessToken: access, Nickname: user.Nickname, IsAdmin: user.IsAdmin}, nil
}
