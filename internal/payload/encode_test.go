// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Passthrough kinds
// ─────────────────────────────────────────────

func TestEncode_Passthrough(t *testing.T) {
	tests := []struct {
		name string
		in   Fields
		want string
	}{
		{"url", URL{URL: "example.com/a b"}, "example.com/a b"},
		{"text", Text{Text: "a;b,c:\\d\n\"e\""}, "a;b,c:\\d\n\"e\""},
		{"youtube", YouTube{URL: "https://youtu.be/x"}, "https://youtu.be/x"},
		{"spotify", Spotify{URL: "https://open.spotify.com/track/1"}, "https://open.spotify.com/track/1"},
		{"google review", GoogleReview{PlaceID: "ChIJ N1"}, "https://search.google.com/local/writereview?placeid=ChIJ N1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncode_Nil_ReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
}

func TestEncode_NilPointerVariant_ReturnsEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   Fields
	}{
		{"wifi", (*Wifi)(nil)},
		{"vcard", (*VCard)(nil)},
		{"event", (*Event)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, "", Encode(tt.in))
				assert.Equal(t, "", Label(tt.in))
			})
		})
	}
}

func TestEncode_PointerVariant_EncodesLikeValue(t *testing.T) {
	w := &Wifi{SSID: "Home", Password: "pw", Security: SecurityWPA}
	assert.Equal(t, Encode(*w), Encode(w))
}

// ─────────────────────────────────────────────
// Wifi
// ─────────────────────────────────────────────

func TestEncode_Wifi_ExactString(t *testing.T) {
	got := Encode(Wifi{SSID: "Cafe Guest", Password: "letmein123", Security: SecurityWPA, Hidden: false})

	assert.Equal(t, "WIFI:T:WPA;S:Cafe Guest;P:letmein123;;", got)
}

func TestEncode_Wifi_Hidden(t *testing.T) {
	got := Encode(Wifi{SSID: "x", Password: "y", Security: SecurityWEP, Hidden: true})

	assert.Equal(t, "WIFI:T:WEP;S:x;P:y;H:true;;", got)
}

func TestEncode_Wifi_SecurityModes(t *testing.T) {
	tests := []struct {
		mode SecurityMode
		want string
	}{
		{SecurityWPA, "WPA"},
		{SecurityWEP, "WEP"},
		{SecurityNone, "nopass"},
		{"", "WPA"},
		{"NOPASS", "nopass"},
		{"WPA2-EAP", "WPA2-EAP"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := Encode(Wifi{SSID: "n", Security: tt.mode})
			assert.Equal(t, "WIFI:T:"+tt.want+";S:n;P:;;", got)
		})
	}
}

func TestEncode_Wifi_EscapesSpecialCharacters(t *testing.T) {
	got := Encode(Wifi{SSID: `My;Net,"1":\`, Password: `p;w`, Security: SecurityWPA})

	assert.Equal(t, `WIFI:T:WPA;S:My\;Net\,\"1\"\:\\;P:p\;w;;`, got)
}

// ─────────────────────────────────────────────
// VCard
// ─────────────────────────────────────────────

func TestEncode_VCard_OmitsEmptyOptionalLines(t *testing.T) {
	got := Encode(VCard{FirstName: "Ann", LastName: "Lee", Phone: "555-0100"})

	lines := strings.Split(got, "\n")
	assert.Equal(t, []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Lee;Ann",
		"FN:Ann Lee",
		"TEL:555-0100",
		"END:VCARD",
	}, lines)
	for _, prefix := range []string{"EMAIL:", "ORG:", "TITLE:", "URL:"} {
		assert.NotContains(t, got, prefix)
	}
}

func TestEncode_VCard_AllLinesInOrder(t *testing.T) {
	got := Encode(VCard{
		FirstName:    "Ann",
		LastName:     "Lee",
		Email:        "ann@example.com",
		Phone:        "+1 555",
		Organization: "Acme",
		Title:        "CTO",
		Website:      "https://acme.test",
	})

	assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nN:Lee;Ann\nFN:Ann Lee\n"+
		"EMAIL:ann@example.com\nTEL:+1 555\nORG:Acme\nTITLE:CTO\nURL:https://acme.test\nEND:VCARD", got)
}

func TestEncode_VCard_EmptyNamesKeepNameLines(t *testing.T) {
	got := Encode(VCard{})

	assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nN:;\nFN: \nEND:VCARD", got)
}

func TestEncode_VCard_EscapesTextValues(t *testing.T) {
	got := Encode(VCard{FirstName: "A;nn", LastName: "Lee, Jr", Organization: "R\\D\nLab"})

	assert.Contains(t, got, `N:Lee\, Jr;A\;nn`)
	assert.Contains(t, got, `FN:A\;nn Lee\, Jr`)
	assert.Contains(t, got, `ORG:R\\D\nLab`)
}

// ─────────────────────────────────────────────
// Messaging
// ─────────────────────────────────────────────

func TestEncode_WhatsApp(t *testing.T) {
	assert.Equal(t, "https://wa.me/15550100", Encode(WhatsApp{Phone: "+1 (555) 01-00"}))
	assert.Equal(t, "https://wa.me/15550100?text=Hi%20there%26more%3F",
		Encode(WhatsApp{Phone: "+1 555 0100", Message: "Hi there&more?"}))
}

func TestEncode_SMS(t *testing.T) {
	assert.Equal(t, "sms:5550100", Encode(SMS{Phone: "555-0100"}))
	assert.Equal(t, "sms:5550100?body=ok%20%F0%9F%91%8D", Encode(SMS{Phone: "555-0100", Message: "ok 👍"}))
}

func TestEncode_Phone(t *testing.T) {
	assert.Equal(t, "tel:4930123", Encode(Phone{Phone: "+49 30 123"}))
	assert.Equal(t, "tel:", Encode(Phone{Phone: "call me"}))
}

func TestEncode_Email(t *testing.T) {
	tests := []struct {
		name string
		in   Email
		want string
	}{
		{"to only", Email{To: "a@b.c"}, "mailto:a@b.c"},
		{"subject only", Email{To: "a@b.c", Subject: "Hi you"}, "mailto:a@b.c?subject=Hi%20you"},
		{"body only", Email{To: "a@b.c", Body: "x=y"}, "mailto:a@b.c?body=x%3Dy"},
		{"both", Email{To: "a@b.c", Subject: "S", Body: "B"}, "mailto:a@b.c?subject=S&body=B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

// ─────────────────────────────────────────────
// Social
// ─────────────────────────────────────────────

func TestEncode_Instagram_StripsLeadingAt(t *testing.T) {
	assert.Equal(t, "https://instagram.com/natgeo", Encode(Instagram{Username: "@natgeo"}))
	assert.Equal(t, "https://instagram.com/natgeo", Encode(Instagram{Username: "natgeo"}))
}

func TestEncode_Twitter_TextWinsOverUsername(t *testing.T) {
	assert.Equal(t, "https://twitter.com/intent/tweet?text=hello%20world",
		Encode(Twitter{Username: "@jack", Text: "hello world"}))
	assert.Equal(t, "https://twitter.com/jack", Encode(Twitter{Username: "@jack"}))
}

// ─────────────────────────────────────────────
// Geo
// ─────────────────────────────────────────────

func TestEncode_Geo_RequiresBothCoordinates(t *testing.T) {
	assert.Equal(t, "", Encode(Geo{Latitude: "52.52", Label: "Berlin"}))
	assert.Equal(t, "", Encode(Geo{Longitude: "13.40"}))
	assert.Equal(t, "", Encode(Geo{}))
}

func TestEncode_Geo(t *testing.T) {
	assert.Equal(t, "geo:52.52,13.40?q=52.52,13.40", Encode(Geo{Latitude: "52.52", Longitude: "13.40"}))
	assert.Equal(t, "geo:52.52,13.40?q=52.52,13.40(Brandenburg%20Gate)",
		Encode(Geo{Latitude: "52.52", Longitude: "13.40", Label: "Brandenburg Gate"}))
}

// ─────────────────────────────────────────────
// Event
// ─────────────────────────────────────────────

func TestEncode_Event_RequiresTitleAndStart(t *testing.T) {
	assert.Equal(t, "", Encode(Event{Title: "Launch"}))
	assert.Equal(t, "", Encode(Event{Start: "2026-05-01T10:00"}))
}

func TestEncode_Event_Full(t *testing.T) {
	got := Encode(Event{
		Title:       "Launch",
		Location:    "HQ",
		Start:       "2026-05-01T10:00:00.000",
		End:         "2026-05-01T11:30",
		Description: "Bring snacks",
	})

	assert.Equal(t, "BEGIN:VEVENT\nSUMMARY:Launch\nLOCATION:HQ\nDTSTART:20260501T100000\n"+
		"DTEND:20260501T1130\nDESCRIPTION:Bring snacks\nEND:VEVENT", got)
}

func TestEncode_Event_MinimalAndMalformedDatesPassThrough(t *testing.T) {
	got := Encode(Event{Title: "T", Start: "tomorrow-ish"})

	assert.Equal(t, "BEGIN:VEVENT\nSUMMARY:T\nDTSTART:tomorrowish\nEND:VEVENT", got)
}

// ─────────────────────────────────────────────
// PayPal
// ─────────────────────────────────────────────

func TestEncode_PayPal(t *testing.T) {
	tests := []struct {
		name string
		in   PayPal
		want string
	}{
		{"no identifier", PayPal{Amount: "5"}, ""},
		{"no amount", PayPal{Identifier: "alice", Currency: "EUR"}, "https://www.paypal.com/paypalme/alice"},
		{"amount and currency", PayPal{Identifier: "alice", Amount: "10.00", Currency: "EUR"}, "https://www.paypal.com/paypalme/alice/10.00EUR"},
		{"default currency", PayPal{Identifier: "alice", Amount: "3"}, "https://www.paypal.com/paypalme/alice/3USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

// ─────────────────────────────────────────────
// Properties
// ─────────────────────────────────────────────

var hostileInputs = []string{"", " ", ";", ":", ",", "\n", "\\", "\"", "日本語", "a;b:c,d\ne", "😀&=?#%"}

func fill(kind ContentKind, s string) Fields {
	switch kind {
	case KindURL:
		return URL{URL: s}
	case KindText:
		return Text{Text: s}
	case KindWifi:
		return Wifi{SSID: s, Password: s, Security: SecurityMode(s), Hidden: s != ""}
	case KindVCard:
		return VCard{FirstName: s, LastName: s, Email: s, Phone: s, Organization: s, Title: s, Website: s}
	case KindWhatsApp:
		return WhatsApp{Phone: s, Message: s}
	case KindInstagram:
		return Instagram{Username: s}
	case KindGoogleReview:
		return GoogleReview{PlaceID: s}
	case KindEmail:
		return Email{To: s, Subject: s, Body: s}
	case KindSMS:
		return SMS{Phone: s, Message: s}
	case KindPhone:
		return Phone{Phone: s}
	case KindGeo:
		return Geo{Latitude: s, Longitude: s, Label: s}
	case KindEvent:
		return Event{Title: s, Location: s, Start: s, End: s, Description: s}
	case KindTwitter:
		return Twitter{Username: s, Text: s}
	case KindYouTube:
		return YouTube{URL: s}
	case KindSpotify:
		return Spotify{URL: s}
	case KindPayPal:
		return PayPal{Identifier: s, Amount: s, Currency: s}
	}
	return nil
}

func TestEncode_TotalAndDeterministic(t *testing.T) {
	for _, info := range Kinds() {
		for _, s := range hostileInputs {
			f := fill(info.Kind, s)
			require.NotNil(t, f, "kind %s", info.Kind)
			require.Equal(t, info.Kind, f.Kind())

			var first, second string
			require.NotPanics(t, func() {
				first = Encode(f)
				second = Encode(f)
			}, "kind %s input %q", info.Kind, s)
			assert.Equal(t, first, second, "kind %s input %q", info.Kind, s)
		}
	}
}

func TestEncodeComponent_MatchesURIComponentRules(t *testing.T) {
	assert.Equal(t, "AZaz09-_.!~*'()", encodeComponent("AZaz09-_.!~*'()"))
	assert.Equal(t, "%20%2F%3F%26%3D%23%2B%40%3A", encodeComponent(" /?&=#+@:"))
	assert.Equal(t, "%C3%A9", encodeComponent("é"))
}
