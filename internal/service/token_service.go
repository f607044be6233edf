package service

import (
	"time"

	"github.com/profolio/profolio/internal/security"
)

// TokenService issues the purpose-tagged access/refresh pair. Tokens are
// stateless bearer credentials; nothing is persisted server-side.
type TokenService struct {
	jwtMgr     *security.JWTManager
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(jwtMgr *security.JWTManager, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{jwtMgr: jwtMgr, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (s *TokenService) IssuePair(email string) (access, refresh string, err error) {
	access, err = s.jwtMgr.SignAccessToken(email, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.jwtMgr.SignRefreshToken(email, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// IssueAccess mints a fresh access token during refresh. The presented
// refresh token is not rotated or reissued.
func (s *TokenService) IssueAccess(email string) (string, error) {
	return s.jwtMgr.SignAccessToken(email, s.accessTTL)
}

func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }
