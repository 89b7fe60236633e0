// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// DownloadToken authorizes artifact downloads for one paid checkout session.
//
// The session id travels as the "sub" claim and the purchased product as a
// private "product" claim.
type DownloadToken struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	Product Product `json:"product"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
}

// SessionID returns the checkout session the token was issued for.
func (t *DownloadToken) SessionID() string {
	return t.Subject
}

// String implements fmt.Stringer.
func (t *DownloadToken) String() string {
	return t.SignedString
}
