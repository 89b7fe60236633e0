// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeService_Kinds(t *testing.T) {
	svc := NewEncodeService(logger.Nop())

	kinds := svc.Kinds(context.Background())

	assert.Len(t, kinds.Kinds, 16)
	assert.Equal(t, payload.Categories(), kinds.Categories)
}

func TestEncodeService_Encode_FromWire(t *testing.T) {
	svc := NewEncodeService(logger.Nop())

	var content payload.Content
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"sms","fields":{"phone":"+1 555 0100","message":"hi there"}}`), &content))

	resp, err := svc.Encode(context.Background(), content)

	require.NoError(t, err)
	assert.Equal(t, payload.KindSMS, resp.Kind)
	assert.Equal(t, payload.Encode(content.Fields), resp.Payload)
	assert.NotEmpty(t, resp.Payload)
}

func TestEncodeService_Encode_IncompleteIsNotAnError(t *testing.T) {
	svc := NewEncodeService(logger.Nop())

	resp, err := svc.Encode(context.Background(), payload.Content{Fields: payload.URL{}})

	require.NoError(t, err)
	assert.Equal(t, payload.KindURL, resp.Kind)
	assert.Empty(t, resp.Payload)
}

func TestEncodeService_Encode_NoFields(t *testing.T) {
	svc := NewEncodeService(logger.Nop())

	_, err := svc.Encode(context.Background(), payload.Content{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, payload.ErrEmptyContent)
}
