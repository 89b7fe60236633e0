// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/models"
)

type encodeService struct {
	logger *logger.Logger
}

func NewEncodeService(logger *logger.Logger) EncodeService {
	return &encodeService{logger: logger}
}

func (s *encodeService) Kinds(ctx context.Context) models.KindsResponse {
	return models.KindsResponse{
		Categories: payload.Categories(),
		Kinds:      payload.Kinds(),
	}
}

func (s *encodeService) Encode(ctx context.Context, content payload.Content) (models.EncodeResponse, error) {
	if content.Fields == nil {
		return models.EncodeResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, payload.ErrEmptyContent)
	}

	encoded := payload.Encode(content.Fields)
	logger.FromContext(ctx).Debug().
		Str("kind", string(content.Fields.Kind())).
		Int("payload_len", len(encoded)).
		Msg("content encoded")

	return models.EncodeResponse{
		Kind:    content.Fields.Kind(),
		Payload: encoded,
		Label:   payload.Label(content.Fields),
	}, nil
}
