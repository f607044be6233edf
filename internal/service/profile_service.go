package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/profolio/profolio/internal/domain"
	"github.com/profolio/profolio/internal/repository"
)

type ProfileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	lookups     LookupResolver
	storage     StorageService
}

func NewProfileService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	lookups LookupResolver,
	storage StorageService,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		lookups:     lookups,
		storage:     storage,
	}
}

// ProfileView is the assembled read model. For a closed profile viewed by a
// non-owner only the identity fields are populated and Score stays nil.
type ProfileView struct {
	Email        string              `json:"email"`
	Nickname     string              `json:"nickname"`
	IsOpen       bool                `json:"is_open"`
	IsMe         bool                `json:"is_me"`
	ImageURL     string              `json:"image_url,omitempty"`
	Introduction string              `json:"introduction,omitempty"`
	Positions    []domain.Position   `json:"positions,omitempty"`
	Technologies []domain.Technology `json:"technologies,omitempty"`
	Awards       []AwardView         `json:"awards,omitempty"`
	Links        []string            `json:"links,omitempty"`
	Score        *int                `json:"score,omitempty"`
}

type AwardView struct {
	Name      string    `json:"name"`
	AwardedAt time.Time `json:"awarded_at"`
}

// Get assembles the profile for targetEmail as seen by requesterEmail.
// requesterEmail is empty for anonymous requests.
func (s *ProfileService) Get(ctx context.Context, targetEmail, requesterEmail string) (*ProfileView, error) {
	if targetEmail == "" {
		return nil, ErrInvalidRequest
	}
	user, err := s.userRepo.FindByEmail(targetEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("profile account lookup: %w", err)
	}

	view := &ProfileView{
		Email:    user.Email,
		Nickname: user.Nickname,
		IsMe:     requesterEmail == targetEmail,
	}

	profile, err := s.profileRepo.FindByUserEmail(targetEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// No profile row yet: nothing optional to show, score of the
			// empty profile for the owner.
			if view.IsMe {
				score := Score(nil)
				view.Score = &score
			}
			return view, nil
		}
		return nil, fmt.Errorf("profile lookup: %w", err)
	}

	view.IsOpen = profile.IsOpen
	if !view.IsMe && !profile.IsOpen {
		// Closed profile: optional fields are withheld entirely and no
		// score is computed.
		return view, nil
	}

	view.Introduction = profile.Introduction
	view.Positions = profile.Positions
	view.Technologies = profile.Technologies
	for _, a := range profile.Awards {
		view.Awards = append(view.Awards, AwardView{Name: a.Name, AwardedAt: a.AwardedAt})
	}
	for _, l := range profile.Links {
		view.Links = append(view.Links, l.URL)
	}
	if profile.ImageKey != "" {
		if url, err := s.storage.ResolveImageURL(ctx, profile.ImageKey); err == nil {
			view.ImageURL = url
		}
	}
	score := Score(profile)
	view.Score = &score
	return view, nil
}

type UpdateProfileParams struct {
	IsOpen        bool
	Introduction  string
	PositionIDs   []uint
	TechnologyIDs []uint
	Awards        []AwardView
	Links         []string
}

// Update overwrites every optional field wholesale from params; omitted
// collections are cleared, never merged.
func (s *ProfileService) Update(ctx context.Context, email string, params UpdateProfileParams) error {
	if email == "" {
		return ErrInvalidRequest
	}
	if _, err := s.userRepo.FindByEmail(email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("profile account lookup: %w", err)
	}

	positions, err := s.lookups.PositionsByIDs(ctx, params.PositionIDs)
	if err != nil {
		return fmt.Errorf("resolve positions: %w", err)
	}
	technologies, err := s.lookups.TechnologiesByIDs(ctx, params.TechnologyIDs)
	if err != nil {
		return fmt.Errorf("resolve technologies: %w", err)
	}

	profile := &domain.Profile{
		UserEmail:    email,
		IsOpen:       params.IsOpen,
		Introduction: params.Introduction,
		Positions:    positions,
		Technologies: technologies,
	}
	for _, a := range params.Awards {
		profile.Awards = append(profile.Awards, domain.Award{Name: a.Name, AwardedAt: a.AwardedAt})
	}
	for _, l := range params.Links {
		profile.Links = append(profile.Links, domain.ProfileLink{URL: l})
	}
	if err := s.profileRepo.Replace(profile); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// UploadImage stores a new profile image and swaps the stored key; the old
// object is removed best-effort afterwards.
func (s *ProfileService) UploadImage(ctx context.Context, email string, file io.Reader, fileSize int64, contentType string) (string, error) {
	if email == "" {
		return "", ErrInvalidRequest
	}
	profile, err := s.profileRepo.FindByUserEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("profile lookup: %w", err)
	}

	key, err := s.storage.UploadProfileImage(ctx, email, file, fileSize, contentType)
	if err != nil {
		return "", err
	}
	if err := s.profileRepo.UpdateImageKey(email, key); err != nil {
		return "", fmt.Errorf("store image key: %w", err)
	}
	if profile.ImageKey != "" {
		_ = s.storage.DeleteProfileImage(ctx, email, profile.ImageKey)
	}
	url, err := s.storage.ResolveImageURL(ctx, key)
	if err != nil {
		return "", err
	}
	return url, nil
}

func (s *ProfileService) DeleteImage(ctx context.Context, email string) error {
	if email == "" {
		return ErrInvalidRequest
	}
	profile, err := s.profileRepo.FindByUserEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("profile lookup: %w", err)
	}
	if profile.ImageKey == "" {
		return nil
	}
	if err := s.storage.DeleteProfileImage(ctx, email, profile.ImageKey); err != nil {
		return err
	}
	return s.profileRepo.UpdateImageKey(email, "")
}
