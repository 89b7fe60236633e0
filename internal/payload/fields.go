// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

// Fields is the typed, user-editable content of a QR code. Each
// [ContentKind] has exactly one implementation below.
//
// The interface is sealed: encode is unexported, so adding a variant without
// an encoding rule is a compile error.
type Fields interface {
	// Kind returns the content kind this variant belongs to.
	Kind() ContentKind

	encode() string
}

// URL is a plain web link.
type URL struct {
	URL string `json:"url"`
}

// Text is free-form text.
type Text struct {
	Text string `json:"text"`
}

// Wifi holds network credentials for the WIFI: join flow.
type Wifi struct {
	SSID     string       `json:"ssid"`
	Password string       `json:"password"`
	Security SecurityMode `json:"security"`
	Hidden   bool         `json:"hidden"`
}

// VCard is a minimal contact card.
type VCard struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Title        string `json:"title"`
	Website      string `json:"website"`
}

// WhatsApp opens a chat with an optional prefilled message.
type WhatsApp struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Instagram links to a profile.
type Instagram struct {
	Username string `json:"username"`
}

// GoogleReview opens the "write a review" dialog for a place.
type GoogleReview struct {
	PlaceID string `json:"place_id"`
}

// Email composes a message.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SMS composes a text message.
type SMS struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Phone starts a call.
type Phone struct {
	Phone string `json:"phone"`
}

// Geo points at a coordinate pair. Both coordinates are required.
type Geo struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Label     string `json:"label"`
}

// Event is a calendar entry. Title and Start are required; Start and End are
// local datetime strings such as "2026-05-01T10:00".
type Event struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

// Twitter links to a profile, or composes a tweet when Text is set.
type Twitter struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// YouTube is a video or channel link.
type YouTube struct {
	URL string `json:"url"`
}

// Spotify is a track, album or playlist link.
type Spotify struct {
	URL string `json:"url"`
}

// PayPal is a PayPal.me payment link. Identifier is required.
type PayPal struct {
	Identifier string `json:"identifier"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

func (URL) Kind() ContentKind          { return KindURL }
func (Text) Kind() ContentKind         { return KindText }
func (Wifi) Kind() ContentKind         { return KindWifi }
func (VCard) Kind() ContentKind        { return KindVCard }
func (WhatsApp) Kind() ContentKind     { return KindWhatsApp }
func (Instagram) Kind() ContentKind    { return KindInstagram }
func (GoogleReview) Kind() ContentKind { return KindGoogleReview }
func (Email) Kind() ContentKind        { return KindEmail }
func (SMS) Kind() ContentKind          { return KindSMS }
func (Phone) Kind() ContentKind        { return KindPhone }
func (Geo) Kind() ContentKind          { return KindGeo }
func (Event) Kind() ContentKind        { return KindEvent }
func (Twitter) Kind() ContentKind      { return KindTwitter }
func (YouTube) Kind() ContentKind      { return KindYouTube }
func (Spotify) Kind() ContentKind      { return KindSpotify }
func (PayPal) Kind() ContentKind       { return KindPayPal }
