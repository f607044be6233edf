package handler

import (
	"net/http"

	"github.com/profolio/profolio/internal/http/response"
	"github.com/profolio/profolio/internal/service"
)

type LookupHandler struct {
	lookups service.LookupResolver
}

func NewLookupHandler(lookups service.LookupResolver) *LookupHandler {
	return &LookupHandler{lookups: lookups}
}

func (h *LookupHandler) Positions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.lookups.AllPositions(r.Context())
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list positions", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"positions": positions})
}

func (h *LookupHandler) Technologies(w http.ResponseWriter, r *http.Request) {
	technologies, err := h.lookups.AllTechnologies(r.Context())
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list technologies", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"technologies": technologies})
}
