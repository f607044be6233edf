package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/profolio/profolio/internal/http/middleware"
	"github.com/profolio/profolio/internal/http/response"
	"github.com/profolio/profolio/internal/observability"
	"github.com/profolio/profolio/internal/service"
)

type AuthHandler struct {
	authSvc         service.AuthServiceInterface
	registrationSvc service.RegistrationServiceInterface
}

func NewAuthHandler(authSvc service.AuthServiceInterface, registrationSvc service.RegistrationServiceInterface) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, registrationSvc: registrationSvc}
}

type requestCodeRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "request_code", status, time.Since(start))
	}()

	var req requestCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = "failure"
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	if err := h.authSvc.RequestCode(r.Context(), req.Email); err != nil {
		status = "failure"
		writeServiceError(w, r, err)
		return
	}
	observability.Audit(r, observability.AuditInput{
		EventName:  "auth.verification.requested",
		ActorEmail: req.Email,
		Action:     "request_code",
		Outcome:    "success",
		Reason:     "code_issued",
	})
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "code_sent"})
}

type confirmCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (h *AuthHandler) ConfirmCode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "confirm_code", status, time.Since(start))
	}()

	var req confirmCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = "failure"
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	if err := h.authSvc.ConfirmCode(r.Context(), req.Email, req.Code); err != nil {
		status = "failure"
		writeServiceError(w, r, err)
		return
	}
	observability.Audit(r, observability.AuditInput{
		EventName:  "auth.verification.confirmed",
		ActorEmail: req.Email,
		Action:     "confirm_code",
		Outcome:    "success",
		Reason:     "code_valid",
	})
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "verified"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Nickname     string `json:"nickname"`
	IsAdmin      bool   `json:"is_admin"`
	ImageURL     string `json:"image_url,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "login", status, time.Since(start))
	}()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = "failure"
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	result, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status = "failure"
		observability.Audit(r, observability.AuditInput{
			EventName:  "auth.login.failed",
			ActorEmail: req.Email,
			Action:     "login",
			Outcome:    "failure",
			Reason:     "credentials_rejected",
		})
		writeServiceError(w, r, err)
		return
	}
	observability.Audit(r, observability.AuditInput{
		EventName:  "auth.login",
		ActorEmail: req.Email,
		Action:     "login",
		Outcome:    "success",
		Reason:     "credentials_valid",
	})
	response.JSON(w, r, http.StatusOK, loginResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Nickname:     result.Nickname,
		IsAdmin:      result.IsAdmin,
		ImageURL:     result.ImageURL,
	})
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	Nickname    string `json:"nickname"`
	IsAdmin     bool   `json:"is_admin"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "refresh", status, time.Since(start))
	}()

	email := middleware.SubjectFromContext(r.Context())
	if email == "" {
		status = "failure"
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	result, err := h.authSvc.RefreshAccessToken(r.Context(), email)
	if err != nil {
		status = "failure"
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, refreshResponse{
		AccessToken: result.AccessToken,
		Nickname:    result.Nickname,
		IsAdmin:     result.IsAdmin,
	})
}

type registerRequest struct {
	Email          string `json:"email"`
	Nickname       string `json:"nickname"`
	Password       string `json:"password"`
	VerifyPassword string `json:"verify_password"`
	Tier           string `json:"tier"`
	MemberID       string `json:"member_id"`
	LegalName      string `json:"legal_name"`
	BirthDate      string `json:"birth_date"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "register", status, time.Since(start))
	}()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = "failure"
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	err := h.registrationSvc.Register(r.Context(), service.RegisterParams{
		Email:          req.Email,
		Nickname:       req.Nickname,
		Password:       req.Password,
		VerifyPassword: req.VerifyPassword,
		Tier:           req.Tier,
		MemberID:       req.MemberID,
		LegalName:      req.LegalName,
		BirthDate:      req.BirthDate,
	})
	if err != nil {
		status = "failure"
		writeServiceError(w, r, err)
		return
	}
	observability.Audit(r, observability.AuditInput{
		EventName:  "auth.registered",
		ActorEmail: req.Email,
		Action:     "register",
		Outcome:    "success",
		Reason:     "account_created",
	})
	response.JSON(w, r, http.StatusCreated, map[string]string{"status": "registered"})
}

// writeServiceError maps service sentinel errors onto the HTTP surface.
// Credential failures intentionally share the 400 shape with malformed-input
// failures so callers cannot probe which accounts exist.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", service.ErrInvalidRequest.Error(), nil)
	case errors.Is(err, service.ErrPasswordMismatch):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", service.ErrPasswordMismatch.Error(), nil)
	case errors.Is(err, service.ErrInvalidBirthDate):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", service.ErrInvalidBirthDate.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", service.ErrInvalidCredentials.Error(), nil)
	case errors.Is(err, service.ErrInvalidEmailFormat):
		response.Error(w, r, http.StatusForbidden, "FORBIDDEN", service.ErrInvalidEmailFormat.Error(), nil)
	case errors.Is(err, service.ErrUnregisteredIdentity):
		response.Error(w, r, http.StatusForbidden, "FORBIDDEN", service.ErrUnregisteredIdentity.Error(), nil)
	case errors.Is(err, service.ErrAccountNotFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", service.ErrAccountNotFound.Error(), nil)
	case errors.Is(err, service.ErrInvalidCode):
		response.Error(w, r, http.StatusConflict, "CONFLICT", service.ErrInvalidCode.Error(), nil)
	case errors.Is(err, service.ErrExpiredCode):
		response.Error(w, r, http.StatusConflict, "CONFLICT", service.ErrExpiredCode.Error(), nil)
	case errors.Is(err, service.ErrDuplicateEmail):
		response.Error(w, r, http.StatusConflict, "CONFLICT", service.ErrDuplicateEmail.Error(), nil)
	case errors.Is(err, service.ErrDuplicateNickname):
		response.Error(w, r, http.StatusConflict, "CONFLICT", service.ErrDuplicateNickname.Error(), nil)
	case errors.Is(err, service.ErrAccountExists):
		response.Error(w, r, http.StatusConflict, "CONFLICT", service.ErrAccountExists.Error(), nil)
	case errors.Is(err, service.ErrFileTooBig):
		response.Error(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", service.ErrFileTooBig.Error(), nil)
	case errors.Is(err, service.ErrInvalidFileType):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", service.ErrInvalidFileType.Error(), nil)
	default:
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
	}
}
