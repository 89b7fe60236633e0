// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/internal/store"
	"github.com/MKhiriev/go-qr-studio/models"
)

type clientHistoryService struct {
	history store.HistoryStore

	logger *logger.Logger
}

func NewClientHistoryService(history store.HistoryStore, logger *logger.Logger) ClientHistoryService {
	return &clientHistoryService{history: history, logger: logger}
}

func (s *clientHistoryService) List(ctx context.Context) ([]models.HistoryEntry, error) {
	entries, err := s.history.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading history: %w", err)
	}
	return entries, nil
}

func (s *clientHistoryService) Save(ctx context.Context, fields payload.Fields, style models.StyleSpec) ([]models.HistoryEntry, error) {
	if fields == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, payload.ErrEmptyContent)
	}

	entries, err := s.history.Append(ctx, models.HistoryEntry{
		Kind:    fields.Kind(),
		Payload: payload.Encode(fields),
		Label:   payload.Label(fields),
		Style:   style.HistoryStyle(),
	})
	if err != nil {
		return nil, fmt.Errorf("error saving history entry: %w", err)
	}
	return entries, nil
}

func (s *clientHistoryService) Delete(ctx context.Context, id string) ([]models.HistoryEntry, error) {
	entries, err := s.history.Remove(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting history entry: %w", err)
	}
	return entries, nil
}

func (s *clientHistoryService) Clear(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing history: %w", err)
	}
	return nil
}
