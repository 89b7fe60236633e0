// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import "slices"

// Category groups kinds in menus.
type Category string

const (
	CategoryLinks     Category = "links"
	CategorySocial    Category = "social"
	CategoryContact   Category = "contact"
	CategoryMessaging Category = "messaging"
	CategoryEvents    Category = "events"
	CategoryPayments  Category = "payments"
)

// InputType tells a generic form which widget to draw for a field.
type InputType string

const (
	InputText     InputType = "text"
	InputTextarea InputType = "textarea"
	InputBool     InputType = "bool"
	InputChoice   InputType = "choice"
)

// FieldSpec describes one editable field of a kind. Name matches the JSON
// tag of the corresponding [Fields] struct member.
type FieldSpec struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Input       InputType `json:"input"`
	Choices     []string  `json:"choices,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// KindInfo is the display metadata for a [ContentKind].
type KindInfo struct {
	Kind     ContentKind `json:"kind"`
	Label    string      `json:"label"`
	Category Category    `json:"category"`
	Icon     string      `json:"icon"`
	Fields   []FieldSpec `json:"fields"`
}

func text(name, label, placeholder string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Input: InputText, Placeholder: placeholder}
}

func textarea(name, label, placeholder string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Input: InputTextarea, Placeholder: placeholder}
}

var registry = []KindInfo{
	{
		Kind: KindURL, Label: "Website", Category: CategoryLinks, Icon: "link",
		Fields: []FieldSpec{text("url", "URL", "https://example.com")},
	},
	{
		Kind: KindText, Label: "Text", Category: CategoryLinks, Icon: "type",
		Fields: []FieldSpec{textarea("text", "Text", "Any text")},
	},
	{
		Kind: KindWifi, Label: "WiFi", Category: CategoryContact, Icon: "wifi",
		Fields: []FieldSpec{
			text("ssid", "Network name", "Cafe Guest"),
			text("password", "Password", ""),
			{
				Name: "security", Label: "Security", Input: InputChoice,
				Choices: []string{string(SecurityWPA), string(SecurityWEP), string(SecurityNone)},
			},
			{Name: "hidden", Label: "Hidden network", Input: InputBool},
		},
	},
	{
		Kind: KindVCard, Label: "Contact card", Category: CategoryContact, Icon: "contact",
		Fields: []FieldSpec{
			text("first_name", "First name", ""),
			text("last_name", "Last name", ""),
			text("email", "Email", "name@example.com"),
			text("phone", "Phone", "+1 555 0100"),
			text("organization", "Organization", ""),
			text("title", "Job title", ""),
			text("website", "Website", "https://example.com"),
		},
	},
	{
		Kind: KindWhatsApp, Label: "WhatsApp", Category: CategoryMessaging, Icon: "message-circle",
		Fields: []FieldSpec{
			text("phone", "Phone", "+1 555 0100"),
			textarea("message", "Message", ""),
		},
	},
	{
		Kind: KindInstagram, Label: "Instagram", Category: CategorySocial, Icon: "instagram",
		Fields: []FieldSpec{text("username", "Username", "@username")},
	},
	{
		Kind: KindGoogleReview, Label: "Google review", Category: CategorySocial, Icon: "star",
		Fields: []FieldSpec{text("place_id", "Place ID", "ChIJ...")},
	},
	{
		Kind: KindEmail, Label: "Email", Category: CategoryMessaging, Icon: "mail",
		Fields: []FieldSpec{
			text("to", "To", "name@example.com"),
			text("subject", "Subject", ""),
			textarea("body", "Body", ""),
		},
	},
	{
		Kind: KindSMS, Label: "SMS", Category: CategoryMessaging, Icon: "message-square",
		Fields: []FieldSpec{
			text("phone", "Phone", "+1 555 0100"),
			textarea("message", "Message", ""),
		},
	},
	{
		Kind: KindPhone, Label: "Phone call", Category: CategoryContact, Icon: "phone",
		Fields: []FieldSpec{text("phone", "Phone", "+1 555 0100")},
	},
	{
		Kind: KindGeo, Label: "Location", Category: CategoryLinks, Icon: "map-pin",
		Fields: []FieldSpec{
			text("latitude", "Latitude", "52.5200"),
			text("longitude", "Longitude", "13.4050"),
			text("label", "Label", ""),
		},
	},
	{
		Kind: KindEvent, Label: "Calendar event", Category: CategoryEvents, Icon: "calendar",
		Fields: []FieldSpec{
			text("title", "Title", ""),
			text("location", "Location", ""),
			text("start", "Starts", "2026-05-01T10:00"),
			text("end", "Ends", "2026-05-01T11:00"),
			textarea("description", "Description", ""),
		},
	},
	{
		Kind: KindTwitter, Label: "X / Twitter", Category: CategorySocial, Icon: "twitter",
		Fields: []FieldSpec{
			text("username", "Username", "@username"),
			textarea("text", "Tweet text", ""),
		},
	},
	{
		Kind: KindYouTube, Label: "YouTube", Category: CategorySocial, Icon: "youtube",
		Fields: []FieldSpec{text("url", "Video URL", "https://youtube.com/watch?v=")},
	},
	{
		Kind: KindSpotify, Label: "Spotify", Category: CategorySocial, Icon: "music",
		Fields: []FieldSpec{text("url", "Spotify URL", "https://open.spotify.com/")},
	},
	{
		Kind: KindPayPal, Label: "PayPal", Category: CategoryPayments, Icon: "credit-card",
		Fields: []FieldSpec{
			text("identifier", "PayPal.me name", "alice"),
			text("amount", "Amount", "10.00"),
			text("currency", "Currency", defaultCurrency),
		},
	},
}

var byKind = func() map[ContentKind]KindInfo {
	m := make(map[ContentKind]KindInfo, len(registry))
	for _, info := range registry {
		m[info.Kind] = info
	}
	return m
}()

// Kinds returns the registry in menu order. The result shares no memory
// with the registry.
func Kinds() []KindInfo {
	out := make([]KindInfo, len(registry))
	for i, info := range registry {
		out[i] = info.clone()
	}
	return out
}

// Lookup returns a copy of the metadata for kind.
func Lookup(kind ContentKind) (KindInfo, bool) {
	info, ok := byKind[kind]
	if !ok {
		return KindInfo{}, false
	}
	return info.clone(), true
}

func (k KindInfo) clone() KindInfo {
	k.Fields = slices.Clone(k.Fields)
	for i := range k.Fields {
		k.Fields[i].Choices = slices.Clone(k.Fields[i].Choices)
	}
	return k
}

// Categories returns categories in the order they first appear in the registry.
func Categories() []Category {
	seen := make(map[Category]struct{})
	var out []Category
	for _, info := range registry {
		if _, ok := seen[info.Category]; ok {
			continue
		}
		seen[info.Category] = struct{}{}
		out = append(out, info.Category)
	}
	return out
}

// DefaultFields returns the empty initial state for kind, or nil for an
// unknown kind.
func DefaultFields(kind ContentKind) Fields {
	switch kind {
	case KindURL:
		return URL{}
	case KindText:
		return Text{}
	case KindWifi:
		return Wifi{Security: SecurityWPA}
	case KindVCard:
		return VCard{}
	case KindWhatsApp:
		return WhatsApp{}
	case KindInstagram:
		return Instagram{}
	case KindGoogleReview:
		return GoogleReview{}
	case KindEmail:
		return Email{}
	case KindSMS:
		return SMS{}
	case KindPhone:
		return Phone{}
	case KindGeo:
		return Geo{}
	case KindEvent:
		return Event{}
	case KindTwitter:
		return Twitter{}
	case KindYouTube:
		return YouTube{}
	case KindSpotify:
		return Spotify{}
	case KindPayPal:
		return PayPal{Currency: defaultCurrency}
	}
	return nil
}
