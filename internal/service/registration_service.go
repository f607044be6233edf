package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/profolio/profolio/internal/domain"
	"github.com/profolio/profolio/internal/observability"
	"github.com/profolio/profolio/internal/repository"
	"github.com/profolio/profolio/internal/security"

	"golang.org/x/sync/errgroup"
)

type RegistrationService struct {
	hasher       security.CredentialHasher
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	identityRepo repository.ExternalIdentityRepository
}

func NewRegistrationService(
	hasher security.CredentialHasher,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	identityRepo repository.ExternalIdentityRepository,
) *RegistrationService {
	return &RegistrationService{
		hasher:       hasher,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		identityRepo: identityRepo,
	}
}

type RegisterParams struct {
	Email          string
	Nickname       string
	Password       string
	VerifyPassword string
	Tier           string
	// Member-tier attributes, matched against the external registry.
	MemberID  string
	LegalName string
	BirthDate string
}

// Register creates an account after uniqueness and, for the member tier,
// registry checks. The collision fetches run concurrently; the decision
// order is fixed:
//  1. an account already bound to the external identity wins over everything,
//  2. then duplicate email, then duplicate nickname,
//  3. then a missing registry row,
//  4. otherwise the account is inserted.
//
// The pre-check is race-prone by design; the store's unique constraints are
// the authoritative guard and their violation is surfaced as a conflict.
func (s *RegistrationService) Register(ctx context.Context, p RegisterParams) error {
	if err := s.validate(&p); err != nil {
		return err
	}

	member := p.Tier == domain.TierMember
	var (
		collision *domain.User
		bound     *domain.User
		identity  *domain.ExternalIdentity
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.userRepo.FindByEmailOrNickname(p.Email, p.Nickname)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("collision lookup: %w", err)
		}
		collision = u
		return nil
	})
	if member {
		g.Go(func() error {
			rec, err := s.identityRepo.FindByIDNameBirthDate(p.MemberID, p.LegalName, p.BirthDate)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("identity lookup: %w", err)
			}
			identity = rec
			return nil
		})
		g.Go(func() error {
			u, err := s.userRepo.FindByMemberID(p.MemberID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("bound account lookup: %w", err)
			}
			bound = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if member && bound != nil {
		observability.RecordRegistration(ctx, "identity_bound")
		return ErrAccountExists
	}
	if collision != nil {
		if collision.Email == p.Email {
			observability.RecordRegistration(ctx, "duplicate_email")
			return ErrDuplicateEmail
		}
		observability.RecordRegistration(ctx, "duplicate_nickname")
		return ErrDuplicateNickname
	}
	if member && identity == nil {
		observability.RecordRegistration(ctx, "unregistered_identity")
		return ErrUnregisteredIdentity
	}

	digest, err := s.hasher.Hash(p.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		Email:          p.Email,
		Nickname:       p.Nickname,
		PasswordDigest: digest,
		Tier:           p.Tier,
	}
	if member {
		user.MemberID = &p.MemberID
		user.LegalName = &p.LegalName
		user.BirthDate = &p.BirthDate
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// A concurrent registration won the race past the pre-check.
			observability.RecordRegistration(ctx, "constraint_conflict")
			return ErrAccountExists
		}
		return fmt.Errorf("create account: %w", err)
	}
	if err := s.profileRepo.Create(&domain.Profile{UserEmail: user.Email}); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	observability.RecordRegistration(ctx, "success")
	return nil
}

func (s *RegistrationService) validate(p *RegisterParams) error {
	if p.Tier == "" {
		p.Tier = domain.TierBasic
	}
	if p.Tier != domain.TierBasic && p.Tier != domain.TierMember {
		return ErrInvalidRequest
	}
	if p.Email == "" || p.Nickname == "" || p.Password == "" || p.VerifyPassword == "" {
		return ErrInvalidRequest
	}
	if !security.ValidEmail(p.Email) {
		return ErrInvalidEmailFormat
	}
	if p.Password != p.VerifyPassword {
		return ErrPasswordMismatch
	}
	if p.Tier == domain.TierMember {
		if p.MemberID == "" || p.LegalName == "" || p.BirthDate == "" {
			return ErrInvalidRequest
		}
		// A calendar-valid birth date is required; an invalid one rejects
		// the registration outright.
		if !security.ValidBirthDate(p.BirthDate) {
			return ErrInvalidBirthDate
		}
	}
	return nil
}
