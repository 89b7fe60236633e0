// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/payload"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9 ().\-]+$`)

const (
	minPhoneDigits = 5
	maxPhoneDigits = 15
)

// IsEmail reports whether s is a bare address such as name@example.com.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	_, domain, _ := strings.Cut(addr.Address, "@")
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

// IsPhone reports whether s looks like a dialable number: digits with
// optional +, spaces, dots, dashes and parentheses, 5 to 15 digits.
func IsPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n >= minPhoneDigits && n <= maxPhoneDigits
}

// IsURL reports whether s is an absolute http(s) URL with a host.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizeURL trims s and prefixes https:// when no scheme is present.
// Empty input stays empty.
func NormalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "://") {
		return s
	}
	return "https://" + s
}

// NormalizeFields applies URL normalization to the link-carrying kinds and
// returns every other variant untouched.
func NormalizeFields(f payload.Fields) payload.Fields {
	switch v := f.(type) {
	case payload.URL:
		v.URL = NormalizeURL(v.URL)
		return v
	case payload.YouTube:
		v.URL = NormalizeURL(v.URL)
		return v
	case payload.Spotify:
		v.URL = NormalizeURL(v.URL)
		return v
	}
	return f
}

// Hint returns a short warning for a field value that does not look right,
// or "" when the value is fine or empty. Hints never block encoding.
func Hint(kind payload.ContentKind, field, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	switch field {
	case "email", "to":
		if !IsEmail(value) {
			return "doesn't look like an email address"
		}
	case "phone":
		if !IsPhone(value) {
			return "doesn't look like a phone number"
		}
	case "url", "website":
		if !IsURL(NormalizeURL(value)) {
			return "doesn't look like a link"
		}
	case "latitude", "longitude":
		if !isCoordinate(value, field == "latitude") {
			return "expected a decimal coordinate"
		}
	}

	if kind == payload.KindEvent && (field == "start" || field == "end") && !isLocalDateTime(value) {
		return "expected YYYY-MM-DDTHH:MM"
	}

	return ""
}

var (
	coordinatePattern    = regexp.MustCompile(`^-?\d{1,3}(\.\d+)?$`)
	localDateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2}(\.\d{3})?)?)?$`)
)

func isCoordinate(s string, latitude bool) bool {
	if !coordinatePattern.MatchString(s) {
		return false
	}
	whole := strings.TrimPrefix(strings.SplitN(s, ".", 2)[0], "-")
	limit := 180
	if latitude {
		limit = 90
	}
	n := 0
	for _, r := range whole {
		n = n*10 + int(r-'0')
	}
	return n <= limit
}

func isLocalDateTime(s string) bool {
	return localDateTimePattern.MatchString(s)
}
