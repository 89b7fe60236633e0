package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
)

// downloadAuth is an HTTP middleware guarding artifact downloads.
//
// It extracts the bearer download token from the "Authorization" header,
// validates it via [service.CheckoutService.ParseDownloadToken] and stores
// the parsed token in the request context under [utils.DownloadTokenCtxKey].
// Any failure is answered with 401 Unauthorized.
func (h *Handler) downloadAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.CheckoutService.ParseDownloadToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing download token")
			h.writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.DownloadTokenCtxKey, &token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
