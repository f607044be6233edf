package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/profolio/profolio/internal/http/middleware"
	"github.com/profolio/profolio/internal/http/response"
	"github.com/profolio/profolio/internal/observability"
	"github.com/profolio/profolio/internal/service"
)

const maxProfileImageBytes = 5 << 20

type ProfileHandler struct {
	profileSvc service.ProfileServiceInterface
}

func NewProfileHandler(profileSvc service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Get serves both the public profile view and the owner's own view; which
// fields are visible depends on is_open and on who is asking.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	requester := middleware.SubjectFromContext(r.Context())

	view, err := h.profileSvc.Get(r.Context(), email, requester)
	if err != nil {
		observability.RecordProfileEvent(r.Context(), "get", "failure")
		writeServiceError(w, r, err)
		return
	}
	observability.RecordProfileEvent(r.Context(), "get", "success")
	response.JSON(w, r, http.StatusOK, view)
}

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	email := middleware.SubjectFromContext(r.Context())
	if email == "" {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	view, err := h.profileSvc.Get(r.Context(), email, email)
	if err != nil {
		observability.RecordProfileEvent(r.Context(), "me", "failure")
		writeServiceError(w, r, err)
		return
	}
	observability.RecordProfileEvent(r.Context(), "me", "success")
	response.JSON(w, r, http.StatusOK, view)
}

type updateProfileRequest struct {
	IsOpen        bool     `json:"is_open"`
	Introduction  string   `json:"introduction"`
	PositionIDs   []uint   `json:"position_ids"`
	TechnologyIDs []uint   `json:"technology_ids"`
	Awards        []award  `json:"awards"`
	Links         []string `json:"links"`
}

type award struct {
	Name      string    `json:"name"`
	AwardedAt time.Time `json:"awarded_at"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	email := middleware.SubjectFromContext(r.Context())
	if email == "" {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}

	params := service.UpdateProfileParams{
		IsOpen:        req.IsOpen,
		Introduction:  req.Introduction,
		PositionIDs:   req.PositionIDs,
		TechnologyIDs: req.TechnologyIDs,
		Links:         req.Links,
	}
	for _, a := range req.Awards {
		params.Awards = append(params.Awards, service.AwardView{Name: a.Name, AwardedAt: a.AwardedAt})
	}
	if err := h.profileSvc.Update(r.Context(), email, params); err != nil {
		observability.RecordProfileEvent(r.Context(), "update", "failure")
		writeServiceError(w, r, err)
		return
	}
	observability.RecordProfileEvent(r.Context(), "update", "success")
	observability.Audit(r, observability.AuditInput{
		EventName:  "profile.updated",
		ActorEmail: email,
		Action:     "update",
		Outcome:    "success",
		Reason:     "fields_replaced",
	})
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ProfileHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	email := middleware.SubjectFromContext(r.Context())
	if email == "" {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	if err := r.ParseMultipartForm(maxProfileImageBytes); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed multipart body", nil)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "missing image file", nil)
		return
	}
	defer file.Close()

	url, err := h.profileSvc.UploadImage(r.Context(), email, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		observability.RecordProfileEvent(r.Context(), "upload_image", "failure")
		writeServiceError(w, r, err)
		return
	}
	observability.RecordProfileEvent(r.Context(), "upload_image", "success")
	response.JSON(w, r, http.StatusOK, map[string]string{"image_url": url})
}

func (h *ProfileHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	email := middleware.SubjectFromContext(r.Context())
	if email == "" {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	if err := h.profileSvc.DeleteImage(r.Context(), email); err != nil {
		observability.RecordProfileEvent(r.Context(), "delete_image", "failure")
		writeServiceError(w, r, err)
		return
	}
	observability.RecordProfileEvent(r.Context(), "delete_image", "success")
	response.NoContent(w)
}
