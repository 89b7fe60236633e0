// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Content is the tagged union on the wire:
//
//	{"kind": "wifi", "fields": {"ssid": "...", ...}}
type Content struct {
	Fields Fields
}

type contentJSON struct {
	Kind   ContentKind     `json:"kind"`
	Fields json.RawMessage `json:"fields"`
}

// MarshalJSON implements json.Marshaler.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.Fields == nil {
		return nil, ErrEmptyContent
	}
	raw, err := json.Marshal(c.Fields)
	if err != nil {
		return nil, err
	}
	return json.Marshal(contentJSON{Kind: c.Fields.Kind(), Fields: raw})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Content) UnmarshalJSON(data []byte) error {
	var wire contentJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}
	kind, err := ParseKind(string(wire.Kind))
	if err != nil {
		return err
	}
	f, err := Decode(kind, wire.Fields)
	if err != nil {
		return err
	}
	c.Fields = f
	return nil
}

// Decode parses the JSON object raw into the variant for kind. Missing
// members keep their [DefaultFields] values; unknown members are rejected.
// An empty or null raw yields the defaults.
func Decode(kind ContentKind, raw []byte) (Fields, error) {
	def := DefaultFields(kind)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def, nil
	}

	ptr := reflect.New(reflect.TypeOf(def))
	ptr.Elem().Set(reflect.ValueOf(def))

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(ptr.Interface()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFields, kind, err)
	}

	return ptr.Elem().Interface().(Fields), nil
}

const maxLabelRunes = 48

// Label returns a short human label for history lists.
func Label(f Fields) string {
	if isNil(f) {
		return ""
	}

	var label string
	switch v := f.(type) {
	case URL:
		label = v.URL
	case Text:
		label = v.Text
	case Wifi:
		label = "WiFi: " + v.SSID
	case VCard:
		label = strings.TrimSpace(v.FirstName + " " + v.LastName)
	case WhatsApp:
		label = "WhatsApp " + v.Phone
	case Instagram:
		label = handle(v.Username)
	case Email:
		label = v.To
	case SMS:
		label = "SMS " + v.Phone
	case Phone:
		label = v.Phone
	case Geo:
		label = v.Label
		if label == "" {
			label = v.Latitude + "," + v.Longitude
		}
	case Event:
		label = v.Title
	case Twitter:
		if v.Text != "" {
			label = v.Text
		} else {
			label = handle(v.Username)
		}
	case YouTube:
		label = v.URL
	case Spotify:
		label = v.URL
	case PayPal:
		label = "PayPal " + v.Identifier
	}

	label = strings.Join(strings.Fields(label), " ")
	if label == "" {
		if info, ok := Lookup(f.Kind()); ok {
			return info.Label
		}
		return string(f.Kind())
	}
	return truncate(label, maxLabelRunes)
}

func handle(username string) string {
	username = strings.TrimPrefix(username, "@")
	if username == "" {
		return ""
	}
	return "@" + username
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
