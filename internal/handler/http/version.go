package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-studio/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteBytes(w, []byte(serverVersion), "text/plain; charset=utf-8", http.StatusOK)
}
