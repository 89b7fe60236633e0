package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-studio/internal/app"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/internal/validators"
)

// errorStatus is a row of the error table. An empty message means the
// error text itself is sent back.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is ordered: the first matching row wins, so more specific
// errors go before the generic ones they may wrap.
var errorStatusMap = []errorStatus{
	{target: render.ErrContentTooLong, status: http.StatusUnprocessableEntity, message: app.MsgContentTooLong},
	{target: service.ErrSnapshotTooLarge, status: http.StatusUnprocessableEntity, message: app.MsgSnapshotTooLarge},
	{target: validators.ErrSnapshotTooLarge, status: http.StatusUnprocessableEntity, message: app.MsgSnapshotTooLarge},

	{target: service.ErrSessionNotFound, status: http.StatusNotFound, message: app.MsgSessionNotFound},
	{target: service.ErrNotPaid, status: http.StatusPaymentRequired, message: app.MsgNotPaid},
	{target: service.ErrMalformedMetadata, status: http.StatusConflict, message: app.MsgMalformedMetadata},
	{target: service.ErrCheckoutUnavailable, status: http.StatusServiceUnavailable, message: app.MsgCheckoutUnavailable},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid},
	{target: service.ErrFormatNotPurchased, status: http.StatusForbidden, message: app.MsgFormatNotPurchased},
	{target: service.ErrWebhookRetry, status: http.StatusServiceUnavailable, message: app.MsgWebhookRetry},
	{target: service.ErrInvalidWebhook, status: http.StatusBadRequest, message: app.MsgInvalidWebhook},

	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrInvalidQueryParam, status: http.StatusBadRequest},
	{target: ErrMissingSignature, status: http.StatusBadRequest, message: app.MsgInvalidWebhook},

	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: service.ErrVersionIsNotSpecified, status: http.StatusBadRequest},
	{target: payload.ErrUnknownKind, status: http.StatusBadRequest},
	{target: payload.ErrInvalidFields, status: http.StatusBadRequest},
	{target: payload.ErrEmptyContent, status: http.StatusBadRequest},

	{target: validators.ErrInvalidColor, status: http.StatusBadRequest},
	{target: validators.ErrLowContrast, status: http.StatusBadRequest},
	{target: validators.ErrInvalidLogo, status: http.StatusBadRequest},
	{target: validators.ErrLogoTooLarge, status: http.StatusBadRequest},
	{target: validators.ErrInvalidErrorCorrection, status: http.StatusBadRequest},
	{target: validators.ErrEmptyPayload, status: http.StatusBadRequest},
	{target: validators.ErrPayloadTooLong, status: http.StatusBadRequest},
	{target: validators.ErrUnknownProduct, status: http.StatusBadRequest},
	{target: validators.ErrUnknownFormat, status: http.StatusBadRequest},
	{target: validators.ErrInvalidSize, status: http.StatusBadRequest},

	{target: render.ErrEmptyPayload, status: http.StatusBadRequest},
	{target: render.ErrInvalidSize, status: http.StatusBadRequest},
	{target: render.ErrInvalidColor, status: http.StatusBadRequest},
	{target: render.ErrInvalidLogo, status: http.StatusBadRequest},
	{target: render.ErrUnknownFormat, status: http.StatusBadRequest},
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// responseFromError returns the status code and the client-facing message
// for err. Unknown errors become a bare 500 so internals never leak.
func responseFromError(err error) (int, string) {
	for _, row := range errorStatusMap {
		if errors.Is(err, row.target) {
			if row.message == "" {
				return row.status, err.Error()
			}
			return row.status, row.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
