package service

import (
	"context"
	"io"
)

// Handler-facing surfaces. Handlers depend on these instead of the concrete
// services so tests can substitute fakes.

type AuthServiceInterface interface {
	RequestCode(ctx context.Context, email string) error
	ConfirmCode(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshAccessToken(ctx context.Context, email string) (*RefreshResult, error)
}

type RegistrationServiceInterface interface {
	Register(ctx context.Context, p RegisterParams) error
}

type ProfileServiceInterface interface {
	Get(ctx context.Context, targetEmail, requesterEmail string) (*ProfileView, error)
	Update(ctx context.Context, email string, params UpdateProfileParams) error
	UploadImage(ctx context.Context, email string, file io.Reader, fileSize int64, contentType string) (string, error)
	DeleteImage(ctx context.Context, email string) error
}
