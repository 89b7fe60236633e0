// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateDownloadToken issues an HMAC-SHA256 JWT allowing artifact
// downloads for one checkout session.
//
// Claims:
//   - iss: issuer
//   - sub: the checkout session id
//   - product: the purchased product
//   - iat / exp: now and now+tokenDuration
//
// All parameters are required.
func GenerateDownloadToken(issuer, sessionID string, product models.Product, tokenDuration time.Duration, signKey []byte) (models.DownloadToken, error) {
	if issuer == "" || sessionID == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.DownloadToken{}, errors.New("invalid params for generating download token")
	}

	now := time.Now()
	claims := &models.DownloadToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Product: product,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signKey)
	if err != nil {
		return models.DownloadToken{}, fmt.Errorf("error signing download token: %w", err)
	}

	claims.Token = token
	claims.SignedString = signed
	return *claims, nil
}

// ValidateDownloadToken verifies signature, issuer and expiry of
// tokenString and returns its claims. Only HS256 is accepted.
func ValidateDownloadToken(tokenString string, signKey []byte, issuer string) (models.DownloadToken, error) {
	claims := &models.DownloadToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.DownloadToken{}, fmt.Errorf("error validating download token: %w", err)
	}
	if claims.Subject == "" {
		return models.DownloadToken{}, errors.New("download token has empty subject")
	}

	claims.Token = token
	claims.SignedString = tokenString
	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
