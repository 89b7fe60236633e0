// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"reflect"
	"strings"
)

// Encode returns the exact string a scanning app expects for f.
//
// Encode is pure and total: it never panics and never fails. When required
// fields are missing the result is the empty string, which callers treat as
// "nothing to render yet".
func Encode(f Fields) string {
	if isNil(f) {
		return ""
	}
	return f.encode()
}

// isNil reports whether f is nil or wraps a nil pointer.
func isNil(f Fields) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

const (
	whatsAppBase     = "https://wa.me/"
	instagramBase    = "https://instagram.com/"
	googleReviewBase = "https://search.google.com/local/writereview?placeid="
	twitterBase      = "https://twitter.com/"
	tweetIntentBase  = "https://twitter.com/intent/tweet?text="
	payPalBase       = "https://www.paypal.com/paypalme/"

	defaultCurrency = "USD"
)

var (
	// MECARD special characters inside S: and P: values.
	wifiEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

	// vCard 3.0 TEXT value escaping.
	vcardEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, "\r\n", `\n`, "\n", `\n`)

	// iCalendar date-time is produced by stripping separators, not parsing.
	icalDateStripper = strings.NewReplacer("-", "", ":", "", ".000", "")
)

func (f URL) encode() string     { return f.URL }
func (f Text) encode() string    { return f.Text }
func (f YouTube) encode() string { return f.URL }
func (f Spotify) encode() string { return f.URL }

func (f Wifi) encode() string {
	hidden := ""
	if f.Hidden {
		hidden = "H:true;"
	}
	return "WIFI:T:" + f.Security.wireValue() +
		";S:" + wifiEscaper.Replace(f.SSID) +
		";P:" + wifiEscaper.Replace(f.Password) +
		";" + hidden + ";"
}

func (f VCard) encode() string {
	first := vcardEscaper.Replace(f.FirstName)
	last := vcardEscaper.Replace(f.LastName)

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + last + ";" + first,
		"FN:" + first + " " + last,
	}
	if f.Email != "" {
		lines = append(lines, "EMAIL:"+f.Email)
	}
	if f.Phone != "" {
		lines = append(lines, "TEL:"+f.Phone)
	}
	if f.Organization != "" {
		lines = append(lines, "ORG:"+vcardEscaper.Replace(f.Organization))
	}
	if f.Title != "" {
		lines = append(lines, "TITLE:"+vcardEscaper.Replace(f.Title))
	}
	if f.Website != "" {
		lines = append(lines, "URL:"+f.Website)
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

func (f WhatsApp) encode() string {
	out := whatsAppBase + digitsOnly(f.Phone)
	if f.Message != "" {
		out += "?text=" + encodeComponent(f.Message)
	}
	return out
}

func (f Instagram) encode() string {
	return instagramBase + strings.TrimPrefix(f.Username, "@")
}

func (f GoogleReview) encode() string {
	return googleReviewBase + f.PlaceID
}

func (f Email) encode() string {
	params := make([]string, 0, 2)
	if f.Subject != "" {
		params = append(params, "subject="+encodeComponent(f.Subject))
	}
	if f.Body != "" {
		params = append(params, "body="+encodeComponent(f.Body))
	}

	out := "mailto:" + f.To
	if len(params) > 0 {
		out += "?" + strings.Join(params, "&")
	}
	return out
}

func (f SMS) encode() string {
	out := "sms:" + digitsOnly(f.Phone)
	if f.Message != "" {
		out += "?body=" + encodeComponent(f.Message)
	}
	return out
}

func (f Phone) encode() string {
	return "tel:" + digitsOnly(f.Phone)
}

func (f Geo) encode() string {
	if f.Latitude == "" || f.Longitude == "" {
		return ""
	}

	coords := f.Latitude + "," + f.Longitude
	out := "geo:" + coords + "?q=" + coords
	if f.Label != "" {
		out += "(" + encodeComponent(f.Label) + ")"
	}
	return out
}

func (f Event) encode() string {
	if f.Title == "" || f.Start == "" {
		return ""
	}

	lines := []string{
		"BEGIN:VEVENT",
		"SUMMARY:" + f.Title,
	}
	if f.Location != "" {
		lines = append(lines, "LOCATION:"+f.Location)
	}
	lines = append(lines, "DTSTART:"+icalDateStripper.Replace(f.Start))
	if f.End != "" {
		lines = append(lines, "DTEND:"+icalDateStripper.Replace(f.End))
	}
	if f.Description != "" {
		lines = append(lines, "DESCRIPTION:"+f.Description)
	}
	lines = append(lines, "END:VEVENT")

	return strings.Join(lines, "\n")
}

func (f Twitter) encode() string {
	// tweet text wins over the profile even if both are set
	if f.Text != "" {
		return tweetIntentBase + encodeComponent(f.Text)
	}
	return twitterBase + strings.TrimPrefix(f.Username, "@")
}

func (f PayPal) encode() string {
	if f.Identifier == "" {
		return ""
	}

	out := payPalBase + f.Identifier
	if f.Amount != "" {
		currency := f.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		out += "/" + f.Amount + currency
	}
	return out
}

// digitsOnly drops every rune that is not an ASCII digit, including '+'.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

const upperHex = "0123456789ABCDEF"

// encodeComponent percent-encodes s byte-wise, leaving only the URI
// component unreserved set A-Z a-z 0-9 - _ . ! ~ * ' ( ) intact.
func encodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
