package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/profolio/profolio/internal/domain"
	"github.com/profolio/profolio/internal/repository"
	repogomock "github.com/profolio/profolio/internal/repository/gomock"
	"go.uber.org/mock/gomock"
)

// lookupStub resolves from a fixed in-memory table set.
type lookupStub struct {
	positions    []domain.Position
	technologies []domain.Technology
	err          error
}

func (l *lookupStub) PositionsByIDs(_ context.Context, ids []uint) ([]domain.Position, error) {
	if l.err != nil {
		return nil, l.err
	}
	var out []domain.Position
	for _, id := range ids {
		for _, p := range l.positions {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (l *lookupStub) TechnologiesByIDs(_ context.Context, ids []uint) ([]domain.Technology, error) {
	if l.err != nil {
		return nil, l.err
	}
	var out []domain.Technology
	for _, id := range ids {
		for _, t := range l.technologies {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (l *lookupStub) AllPositions(context.Context) ([]domain.Position, error) {
	return l.positions, l.err
}

func (l *lookupStub) AllTechnologies(context.Context) ([]domain.Technology, error) {
	return l.technologies, l.err
}

type profileFixture struct {
	users    *repogomock.MockUserRepository
	profiles *repogomock.MockProfileRepository
	lookups  *lookupStub
	storage  *storageStub
	svc      *ProfileService
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	fx := &profileFixture{
		users:    repogomock.NewMockUserRepository(ctrl),
		profiles: repogomock.NewMockProfileRepository(ctrl),
		lookups: &lookupStub{
			positions:    []domain.Position{{ID: 1, Name: "Backend"}, {ID: 2, Name: "Frontend"}},
			technologies: []domain.Technology{{ID: 10, Name: "Go"}, {ID: 11, Name: "PostgreSQL"}},
		},
		storage: &storageStub{},
	}
	fx.svc = NewProfileService(fx.users, fx.profiles, fx.lookups, fx.storage)
	return fx
}

func fullProfile(email string) *domain.Profile {
	return &domain.Profile{
		UserEmail:    email,
		IsOpen:       true,
		ImageKey:     "profiles/" + email + "/avatar.png",
		Introduction: "Backend engineer.",
		Positions:    []domain.Position{{ID: 1, Name: "Backend"}},
		Technologies: []domain.Technology{{ID: 10, Name: "Go"}},
		Awards:       []domain.Award{{Name: "Hackathon 2024", AwardedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}},
		Links:        []domain.ProfileLink{{URL: "https://example.com/me"}},
	}
}

func TestProfileGetVisibility(t *testing.T) {
	ctx := context.Background()
	const owner = "owner@example.com"

	t.Run("unknown account", func(t *testing.T) {
		fx := newProfileFixture(t)
		fx.users.EXPECT().FindByEmail("ghost@example.com").Return(nil, repository.ErrNotFound)
		if _, err := fx.svc.Get(ctx, "ghost@example.com", ""); !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("open profile visible to anonymous with score", func(t *testing.T) {
		fx := newProfileFixture(t)
		fx.users.EXPECT().FindByEmail(owner).Return(&domain.User{Email: owner, Nickname: "owner"}, nil)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(fullProfile(owner), nil)

		view, err := fx.svc.Get(ctx, owner, "")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if view.IsMe {
			t.Fatal("anonymous requester must not be the owner")
		}
		if view.Introduction == "" || len(view.Positions) != 1 || len(view.Awards) != 1 || len(view.Links) != 1 {
			t.Fatalf("expected all optional fields, got %+v", view)
		}
		if view.Score == nil {
			t.Fatal("expected a score on an open profile")
		}
		if !strings.Contains(view.ImageURL, "avatar.png") {
			t.Fatalf("expected resolved image url, got %q", view.ImageURL)
		}
	})

	t.Run("closed profile hides everything but identity from others", func(t *testing.T) {
		fx := newProfileFixture(t)
		p := fullProfile(owner)
		p.IsOpen = false
		fx.users.EXPECT().FindByEmail(owner).Return(&domain.User{Email: owner, Nickname: "owner"}, nil)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(p, nil)

		view, err := fx.svc.Get(ctx, owner, "viewer@example.com")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if view.Email != owner || view.Nickname != "owner" {
			t.Fatalf("identity fields must survive, got %+v", view)
		}
		if view.Introduction != "" || view.ImageURL != "" || view.Positions != nil || view.Awards != nil || view.Links != nil {
			t.Fatalf("optional fields must be withheld, got %+v", view)
		}
		if view.Score != nil {
			t.Fatal("no score may be computed for a withheld profile")
		}
	})

	t.Run("closed profile fully visible to its owner", func(t *testing.T) {
		fx := newProfileFixture(t)
		p := fullProfile(owner)
		p.IsOpen = false
		fx.users.EXPECT().FindByEmail(owner).Return(&domain.User{Email: owner, Nickname: "owner"}, nil)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(p, nil)

		view, err := fx.svc.Get(ctx, owner, owner)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !view.IsMe {
			t.Fatal("expected IsMe for the owner")
		}
		if view.Introduction == "" || view.Score == nil {
			t.Fatalf("owner must see the full view, got %+v", view)
		}
	})

	t.Run("missing profile row scores zero for the owner", func(t *testing.T) {
		fx := newProfileFixture(t)
		fx.users.EXPECT().FindByEmail(owner).Return(&domain.User{Email: owner, Nickname: "owner"}, nil)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(nil, repository.ErrNotFound)

		view, err := fx.svc.Get(ctx, owner, owner)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if view.Score == nil || *view.Score != 0 {
			t.Fatalf("expected zero score, got %v", view.Score)
		}
	})

	t.Run("image resolution failure degrades to no url", func(t *testing.T) {
		fx := newProfileFixture(t)
		fx.storage.resolveErr = errors.New("storage down")
		fx.users.EXPECT().FindByEmail(owner).Return(&domain.User{Email: owner, Nickname: "owner"}, nil)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(fullProfile(owner), nil)

		view, err := fx.svc.Get(ctx, owner, "")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if view.ImageURL != "" {
			t.Fatalf("expected empty image url, got %q", view.ImageURL)
		}
	})
}

func TestProfileUpdateReplacesWholesale(t *testing.T) {
	fx := newProfileFixture(t)
	const owner = "owner@example.com"

	fx.users.EXPECT().FindByEmail(owner).Return(&domain.User{Email: owner}, nil)
	var replaced *domain.Profile
	fx.profiles.EXPECT().Replace(gomock.Any()).DoAndReturn(func(p *domain.Profile) error {
		replaced = p
		return nil
	})

	params := UpdateProfileParams{
		IsOpen:       true,
		Introduction: "Hello.",
		PositionIDs:  []uint{2},
		// Absent technologies, awards and links clear those collections.
		Links: []string{"https://example.com/new"},
	}
	if err := fx.svc.Update(context.Background(), owner, params); err != nil {
		t.Fatalf("update: %v", err)
	}
	if replaced == nil {
		t.Fatal("expected a replace call")
	}
	if !replaced.IsOpen || replaced.Introduction != "Hello." {
		t.Fatalf("scalar fields not carried: %+v", replaced)
	}
	if len(replaced.Positions) != 1 || replaced.Positions[0].ID != 2 {
		t.Fatalf("expected resolved position 2, got %+v", replaced.Positions)
	}
	if len(replaced.Technologies) != 0 || len(replaced.Awards) != 0 {
		t.Fatalf("omitted collections must be empty, got %+v", replaced)
	}
	if len(replaced.Links) != 1 || replaced.Links[0].URL != "https://example.com/new" {
		t.Fatalf("unexpected links %+v", replaced.Links)
	}
}

func TestProfileUpdateUnknownLookupIDsAreDropped(t *testing.T) {
	fx := newProfileFixture(t)
	const owner = "owner@example.com"

	fx.users.EXPECT().FindByEmail(owner).Return(&domain.User{Email: owner}, nil)
	var replaced *domain.Profile
	fx.profiles.EXPECT().Replace(gomock.Any()).DoAndReturn(func(p *domain.Profile) error {
		replaced = p
		return nil
	})

	params := UpdateProfileParams{PositionIDs: []uint{1, 99}, TechnologyIDs: []uint{999}}
	if err := fx.svc.Update(context.Background(), owner, params); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(replaced.Positions) != 1 || replaced.Positions[0].ID != 1 {
		t.Fatalf("expected only known positions, got %+v", replaced.Positions)
	}
	if len(replaced.Technologies) != 0 {
		t.Fatalf("expected no technologies, got %+v", replaced.Technologies)
	}
}

func TestProfileImageLifecycle(t *testing.T) {
	ctx := context.Background()
	const owner = "owner@example.com"

	t.Run("upload swaps the key and removes the old object", func(t *testing.T) {
		fx := newProfileFixture(t)
		fx.storage.uploadKey = "profiles/" + owner + "/new.png"
		old := fullProfile(owner)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(old, nil)
		fx.profiles.EXPECT().UpdateImageKey(owner, fx.storage.uploadKey).Return(nil)

		url, err := fx.svc.UploadImage(ctx, owner, strings.NewReader("png-bytes"), 9, "image/png")
		if err != nil {
			t.Fatalf("upload: %v", err)
		}
		if !strings.Contains(url, "new.png") {
			t.Fatalf("unexpected url %q", url)
		}
		if len(fx.storage.deletedKeys) != 1 || fx.storage.deletedKeys[0] != old.ImageKey {
			t.Fatalf("expected old object removed, got %v", fx.storage.deletedKeys)
		}
	})

	t.Run("first upload deletes nothing", func(t *testing.T) {
		fx := newProfileFixture(t)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(&domain.Profile{UserEmail: owner}, nil)
		fx.profiles.EXPECT().UpdateImageKey(owner, gomock.Any()).Return(nil)

		if _, err := fx.svc.UploadImage(ctx, owner, strings.NewReader("png-bytes"), 9, "image/png"); err != nil {
			t.Fatalf("upload: %v", err)
		}
		if len(fx.storage.deletedKeys) != 0 {
			t.Fatalf("expected no deletions, got %v", fx.storage.deletedKeys)
		}
	})

	t.Run("old object deletion failure does not fail the upload", func(t *testing.T) {
		fx := newProfileFixture(t)
		fx.storage.deleteErr = errors.New("object locked")
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(fullProfile(owner), nil)
		fx.profiles.EXPECT().UpdateImageKey(owner, gomock.Any()).Return(nil)

		if _, err := fx.svc.UploadImage(ctx, owner, strings.NewReader("png-bytes"), 9, "image/png"); err != nil {
			t.Fatalf("upload must tolerate old-object cleanup failure: %v", err)
		}
	})

	t.Run("delete clears the stored key", func(t *testing.T) {
		fx := newProfileFixture(t)
		p := fullProfile(owner)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(p, nil)
		fx.profiles.EXPECT().UpdateImageKey(owner, "").Return(nil)

		if err := fx.svc.DeleteImage(ctx, owner); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(fx.storage.deletedKeys) != 1 || fx.storage.deletedKeys[0] != p.ImageKey {
			t.Fatalf("expected object removed, got %v", fx.storage.deletedKeys)
		}
	})

	t.Run("delete without an image is a no-op", func(t *testing.T) {
		fx := newProfileFixture(t)
		fx.profiles.EXPECT().FindByUserEmail(owner).Return(&domain.Profile{UserEmail: owner}, nil)

		if err := fx.svc.DeleteImage(ctx, owner); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(fx.storage.deletedKeys) != 0 {
			t.Fatalf("expected no deletions, got %v", fx.storage.deletedKeys)
		}
	})
}
