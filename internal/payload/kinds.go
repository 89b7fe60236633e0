// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"fmt"
	"strings"
)

// ContentKind identifies what a QR code carries. The set is closed: every
// kind has exactly one [Fields] variant, one encoding rule and one registry
// entry.
type ContentKind string

const (
	KindURL          ContentKind = "url"
	KindText         ContentKind = "text"
	KindWifi         ContentKind = "wifi"
	KindVCard        ContentKind = "vcard"
	KindWhatsApp     ContentKind = "whatsapp"
	KindInstagram    ContentKind = "instagram"
	KindGoogleReview ContentKind = "google_review"
	KindEmail        ContentKind = "email"
	KindSMS          ContentKind = "sms"
	KindPhone        ContentKind = "phone"
	KindGeo          ContentKind = "geo"
	KindEvent        ContentKind = "event"
	KindTwitter      ContentKind = "twitter"
	KindYouTube      ContentKind = "youtube"
	KindSpotify      ContentKind = "spotify"
	KindPayPal       ContentKind = "paypal"
)

// String implements fmt.Stringer.
func (k ContentKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the registered kinds.
func (k ContentKind) Valid() bool {
	_, ok := Lookup(k)
	return ok
}

// ParseKind converts a wire string into a ContentKind. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseKind(s string) (ContentKind, error) {
	k := ContentKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// SecurityMode is the WiFi authentication scheme.
type SecurityMode string

const (
	SecurityWPA  SecurityMode = "WPA"
	SecurityWEP  SecurityMode = "WEP"
	SecurityNone SecurityMode = "None"
)

// wireValue returns the value a scanner expects after "T:".
func (m SecurityMode) wireValue() string {
	switch m {
	case SecurityWPA, "":
		return "WPA"
	case SecurityWEP:
		return "WEP"
	case SecurityNone:
		return "nopass"
	}
	if strings.EqualFold(string(m), "nopass") {
		return "nopass"
	}
	return string(m)
}
