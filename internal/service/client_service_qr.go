// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/models"
)

// kindsSyncTimeout bounds the startup registry fetch so an unreachable
// server does not delay the menu.
const kindsSyncTimeout = 3 * time.Second

// offeredKinds is the part of the local registry the server also serves.
type offeredKinds struct {
	categories []payload.Category
	kinds      []payload.ContentKind
}

type clientQRService struct {
	server   adapter.ServerAdapter
	renderer render.Renderer
	latest   atomic.Uint64
	offered  atomic.Pointer[offeredKinds]

	logger *logger.Logger
}

func NewClientQRService(server adapter.ServerAdapter, renderer render.Renderer, logger *logger.Logger) ClientQRService {
	return &clientQRService{server: server, renderer: renderer, logger: logger}
}

// SyncKinds narrows the menu to kinds both sides know. Forms are always
// built from the local registry, so server metadata only selects entries.
func (s *clientQRService) SyncKinds(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, kindsSyncTimeout)
	defer cancel()

	resp, err := s.server.Kinds(ctx)
	if err != nil {
		return fmt.Errorf("error fetching kinds: %w", mapAdapterError(err))
	}

	served := make(map[payload.ContentKind]bool, len(resp.Kinds))
	for _, info := range resp.Kinds {
		served[info.Kind] = true
	}

	offered := &offeredKinds{}
	inCategory := make(map[payload.Category]bool)
	for _, info := range payload.Kinds() {
		if served[info.Kind] {
			offered.kinds = append(offered.kinds, info.Kind)
			inCategory[info.Category] = true
		}
	}
	if len(offered.kinds) == 0 {
		return fmt.Errorf("%w: server offers no known kinds", ErrInvalidDataProvided)
	}
	for _, category := range payload.Categories() {
		if inCategory[category] {
			offered.categories = append(offered.categories, category)
		}
	}

	s.offered.Store(offered)
	s.logger.Debug().Int("kinds", len(offered.kinds)).Msg("kinds synced with server")
	return nil
}

// Kinds falls back to the full local registry until SyncKinds succeeds.
func (s *clientQRService) Kinds() []payload.KindInfo {
	offered := s.offered.Load()
	if offered == nil {
		return payload.Kinds()
	}
	out := make([]payload.KindInfo, 0, len(offered.kinds))
	for _, kind := range offered.kinds {
		if info, ok := payload.Lookup(kind); ok {
			out = append(out, info)
		}
	}
	return out
}

func (s *clientQRService) Categories() []payload.Category {
	if offered := s.offered.Load(); offered != nil {
		return slices.Clone(offered.categories)
	}
	return payload.Categories()
}

func (s *clientQRService) Encode(fields payload.Fields) models.EncodeResponse {
	if fields == nil {
		return models.EncodeResponse{}
	}
	return models.EncodeResponse{
		Kind:    fields.Kind(),
		Payload: payload.Encode(fields),
		Label:   payload.Label(fields),
	}
}

func (s *clientQRService) NextPreview() uint64 {
	return s.latest.Add(1)
}

// Preview renders nothing for empty payloads: an incomplete form is not
// an error, it just has no code yet.
func (s *clientQRService) Preview(ctx context.Context, seq uint64, fields payload.Fields) models.PreviewResult {
	encoded := s.Encode(fields)
	result := models.PreviewResult{Seq: seq, Payload: encoded.Payload, Label: encoded.Label}
	if encoded.Payload == "" || ctx.Err() != nil {
		return result
	}

	result.Terminal, result.Err = s.renderer.Terminal(encoded.Payload)
	if result.Err != nil {
		s.logger.Debug().Err(result.Err).Uint64("seq", seq).Msg("preview render failed")
	}
	return result
}

func (s *clientQRService) IsCurrent(seq uint64) bool {
	return s.latest.Load() == seq
}
