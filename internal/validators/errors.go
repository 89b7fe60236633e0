package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidColor           = errors.New("invalid color, expected #rgb or #rrggbb")
	ErrLowContrast            = errors.New("foreground and background colors are too similar")
	ErrInvalidLogo            = errors.New("invalid logo, expected a png, jpeg or gif data URL")
	ErrLogoTooLarge           = errors.New("logo is too large")
	ErrInvalidErrorCorrection = errors.New("error correction level must be H")
	ErrEmptyPayload           = errors.New("payload is required")
	ErrPayloadTooLong         = errors.New("payload is too long")
	ErrUnknownProduct         = errors.New("unknown product")
	ErrSnapshotTooLarge       = errors.New("payload and style do not fit into checkout metadata")
	ErrUnknownFormat          = errors.New("unknown format")
	ErrInvalidSize            = errors.New("invalid size")
)
