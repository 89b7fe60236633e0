// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
)

// Session metadata layout:
//
//	qr_0 .. qr_{n-1}  snapshot JSON split into chunks
//	qr_parts          n
//	qr_sig            hex HMAC-SHA256 over product + "\n" + JSON
//	qr_product        purchased product
const (
	metadataKeyParts    = "qr_parts"
	metadataKeySig      = "qr_sig"
	metadataChunkPrefix = "qr_"

	maxMetadataValueRunes = models.MaxMetadataValueRunes
	maxSnapshotChunks     = models.MaxSnapshotChunks
)

// snapshotCodec stores a signed snapshot in session metadata and reads it
// back.
type snapshotCodec struct {
	signer *utils.Signer
}

func newSnapshotCodec(secret string) (snapshotCodec, error) {
	signer, err := utils.NewSigner(secret, utils.KeyPurposeSnapshot)
	if err != nil {
		return snapshotCodec{}, fmt.Errorf("error creating snapshot signer: %w", err)
	}
	return snapshotCodec{signer: signer}, nil
}

func (c snapshotCodec) encode(snapshot models.Snapshot, product models.Product) (map[string]string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("error marshaling snapshot: %w", err)
	}

	chunks := chunkRunes(string(data), maxMetadataValueRunes)
	if len(chunks) > maxSnapshotChunks {
		return nil, fmt.Errorf("%w: %d chunks, at most %d allowed", ErrSnapshotTooLarge, len(chunks), maxSnapshotChunks)
	}

	metadata := make(map[string]string, len(chunks)+3)
	for i, chunk := range chunks {
		metadata[chunkKey(i)] = chunk
	}
	metadata[metadataKeyParts] = strconv.Itoa(len(chunks))
	metadata[models.MetadataKeyProduct] = string(product)
	metadata[metadataKeySig] = c.signer.Sign(signedContent(product, data))

	return metadata, nil
}

func (c snapshotCodec) decode(metadata map[string]string) (models.Snapshot, models.Product, error) {
	parts, err := strconv.Atoi(metadata[metadataKeyParts])
	if err != nil || parts < 1 || parts > maxSnapshotChunks {
		return models.Snapshot{}, "", fmt.Errorf("%w: bad %s %q", ErrMalformedMetadata, metadataKeyParts, metadata[metadataKeyParts])
	}

	var sb strings.Builder
	for i := range parts {
		chunk, ok := metadata[chunkKey(i)]
		if !ok {
			return models.Snapshot{}, "", fmt.Errorf("%w: missing %s", ErrMalformedMetadata, chunkKey(i))
		}
		sb.WriteString(chunk)
	}
	data := []byte(sb.String())

	product := models.Product(metadata[models.MetadataKeyProduct])
	if !product.Valid() {
		return models.Snapshot{}, "", fmt.Errorf("%w: unknown product %q", ErrMalformedMetadata, product)
	}
	if !c.signer.Verify(signedContent(product, data), metadata[metadataKeySig]) {
		return models.Snapshot{}, "", fmt.Errorf("%w: signature mismatch", ErrMalformedMetadata)
	}

	var snapshot models.Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snapshot); err != nil {
		return models.Snapshot{}, "", fmt.Errorf("%w: %w", ErrMalformedMetadata, err)
	}

	return snapshot, product, nil
}

func chunkKey(i int) string {
	return metadataChunkPrefix + strconv.Itoa(i)
}

func signedContent(product models.Product, data []byte) []byte {
	out := make([]byte, 0, len(product)+1+len(data))
	out = append(out, product...)
	out = append(out, '\n')
	return append(out, data...)
}

// chunkRunes splits s into pieces of at most n runes without cutting a
// multi-byte character.
func chunkRunes(s string, n int) []string {
	chunks := make([]string, 0, utf8.RuneCountInString(s)/n+1)
	for len(s) > 0 {
		end, count := 0, 0
		for end < len(s) && count < n {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			count++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}
