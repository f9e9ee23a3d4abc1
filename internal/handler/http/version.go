package http

import (
	"net/http"

	"github.com/healthtrack-app/healthtrack/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.Version(r.Context())

	utils.WriteJSON(w, version, http.StatusOK)
}
