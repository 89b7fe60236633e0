// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDF info labels. Each purpose gets its own key derived from the single
// application secret.
const (
	KeyPurposeSnapshot = "qr-studio/snapshot-signature"
	KeyPurposeDownload = "qr-studio/download-token"
)

const derivedKeyLen = 32

// DeriveKey expands secret into a 32-byte key bound to purpose with
// HKDF-SHA256.
func DeriveKey(secret, purpose string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("empty secret")
	}

	key := make([]byte, derivedKeyLen)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(purpose))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("error deriving %s key: %w", purpose, err)
	}
	return key, nil
}

// Signer computes and checks hex HMAC-SHA256 signatures.
type Signer struct {
	key []byte
}

// NewSigner derives a purpose-bound key from secret and returns a Signer
// using it.
func NewSigner(secret, purpose string) (*Signer, error) {
	key, err := DeriveKey(secret, purpose)
	if err != nil {
		return nil, err
	}
	return &Signer{key: key}, nil
}

// Sign returns the hex-encoded HMAC-SHA256 of data.
func (s *Signer) Sign(data []byte) string {
	return hex.EncodeToString(s.mac(data))
}

// Verify reports whether signature is the hex HMAC of data. The comparison
// is constant-time.
func (s *Signer) Verify(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.mac(data))
}

func (s *Signer) mac(data []byte) []byte {
	h := hmac.New(sha256.New, s.key)
	h.Write(data)
	return h.Sum(nil)
}
