package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/profolio/profolio/internal/http/middleware"
	"github.com/profolio/profolio/internal/security"
	"github.com/profolio/profolio/internal/service"
)

type stubAuthService struct {
	requestCodeErr error
	confirmCodeErr error
	loginResult    *service.LoginResult
	loginErr       error
	refreshResult  *service.RefreshResult
	refreshErr     error

	lastEmail string
	lastCode  string
}

func (s *stubAuthService) RequestCode(_ context.Context, email string) error {
	s.lastEmail = email
	return s.requestCodeErr
}

func (s *stubAuthService) ConfirmCode(_ context.Context, email, code string) error {
	s.lastEmail, s.lastCode = email, code
	return s.confirmCodeErr
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*service.LoginResult, error) {
	s.lastEmail = email
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) RefreshAccessToken(_ context.Context, email string) (*service.RefreshResult, error) {
	s.lastEmail = email
	return s.refreshResult, s.refreshErr
}

type stubRegistrationService struct {
	err        error
	lastParams service.RegisterParams
}

func (s *stubRegistrationService) Register(_ context.Context, p service.RegisterParams) error {
	s.lastParams = p
	return s.err
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func authedContext(r *http.Request, email string) *http.Request {
	claims := &security.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
		Purpose:          security.PurposeRefresh,
	}
	return r.WithContext(context.WithValue(r.Context(), middleware.ClaimsContextKey, claims))
}

func TestRequestCodeEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubAuthService{}
		h := NewAuthHandler(svc, &stubRegistrationService{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify/request", strings.NewReader(`{"email":"user@example.com"}`))
		rec := httptest.NewRecorder()
		h.RequestCode(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.lastEmail != "user@example.com" {
			t.Fatalf("service saw email %q", svc.lastEmail)
		}
		if !strings.Contains(rec.Body.String(), "code_sent") {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{}, &stubRegistrationService{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify/request", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		h.RequestCode(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if body := decodeError(t, rec); body.Error.Code != "BAD_REQUEST" {
			t.Fatalf("unexpected error code %q", body.Error.Code)
		}
	})

	t.Run("invalid email format maps to 403", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{requestCodeErr: service.ErrInvalidEmailFormat}, &stubRegistrationService{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify/request", strings.NewReader(`{"email":"nope"}`))
		rec := httptest.NewRecorder()
		h.RequestCode(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestConfirmCodeEndpoint(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"invalid code", service.ErrInvalidCode, http.StatusConflict},
		{"expired code", service.ErrExpiredCode, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{confirmCodeErr: tc.err}
			h := NewAuthHandler(svc, &stubRegistrationService{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify/confirm", strings.NewReader(`{"email":"user@example.com","code":"ABCD1234"}`))
			rec := httptest.NewRecorder()
			h.ConfirmCode(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if svc.lastCode != "ABCD1234" {
				t.Fatalf("service saw code %q", svc.lastCode)
			}
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("success returns the token pair", func(t *testing.T) {
		svc := &stubAuthService{loginResult: &service.LoginResult{
			AccessToken:  "access.jwt",
			RefreshToken: "refresh.jwt",
			Nickname:     "user",
			IsAdmin:      true,
			ImageURL:     "https://storage.local/avatar.png",
		}}
		h := NewAuthHandler(svc, &stubRegistrationService{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"user@example.com","password":"pw"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body loginResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.AccessToken != "access.jwt" || body.RefreshToken != "refresh.jwt" {
			t.Fatalf("tokens missing from response: %+v", body)
		}
		if !body.IsAdmin || body.Nickname != "user" {
			t.Fatalf("unexpected identity fields %+v", body)
		}
	})

	t.Run("rejected credentials share the 400 shape with bad input", func(t *testing.T) {
		credentials := &stubAuthService{loginErr: service.ErrInvalidCredentials}
		badInput := &stubAuthService{loginErr: service.ErrInvalidRequest}

		var codes []string
		for _, svc := range []*stubAuthService{credentials, badInput} {
			h := NewAuthHandler(svc, &stubRegistrationService{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"user@example.com","password":"pw"}`))
			rec := httptest.NewRecorder()
			h.Login(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			codes = append(codes, decodeError(t, rec).Error.Code)
		}
		if codes[0] != codes[1] {
			t.Fatalf("error codes must match to prevent account probing: %v", codes)
		}
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("requires auth context", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{}, &stubRegistrationService{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("mints a new access token for the subject", func(t *testing.T) {
		svc := &stubAuthService{refreshResult: &service.RefreshResult{AccessToken: "new.access", Nickname: "user"}}
		h := NewAuthHandler(svc, &stubRegistrationService{})
		req := authedContext(httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil), "user@example.com")
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.lastEmail != "user@example.com" {
			t.Fatalf("service saw subject %q", svc.lastEmail)
		}
		if !strings.Contains(rec.Body.String(), "new.access") {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("account gone maps to 404", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{refreshErr: service.ErrAccountNotFound}, &stubRegistrationService{})
		req := authedContext(httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil), "gone@example.com")
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestRegisterEndpoint(t *testing.T) {
	const memberBody = `{
		"email":"new@example.com","nickname":"newbie",
		"password":"pw","verify_password":"pw",
		"tier":"member","member_id":"M-1001",
		"legal_name":"Jordan Doe","birth_date":"19950228"
	}`

	t.Run("created", func(t *testing.T) {
		svc := &stubRegistrationService{}
		h := NewAuthHandler(&stubAuthService{}, svc)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(memberBody))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if svc.lastParams.Tier != "member" || svc.lastParams.MemberID != "M-1001" {
			t.Fatalf("params not carried through: %+v", svc.lastParams)
		}
	})

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unregistered identity", service.ErrUnregisteredIdentity, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate email", service.ErrDuplicateEmail, http.StatusConflict, "CONFLICT"},
		{"duplicate nickname", service.ErrDuplicateNickname, http.StatusConflict, "CONFLICT"},
		{"account exists", service.ErrAccountExists, http.StatusConflict, "CONFLICT"},
		{"password mismatch", service.ErrPasswordMismatch, http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid birth date", service.ErrInvalidBirthDate, http.StatusBadRequest, "BAD_REQUEST"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{}, &stubRegistrationService{err: tc.err})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(memberBody))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if body := decodeError(t, rec); body.Error.Code != tc.wantCode {
				t.Fatalf("expected code %q, got %q", tc.wantCode, body.Error.Code)
			}
		})
	}
}
