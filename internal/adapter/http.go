// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Kinds implements [ServerAdapter] via GET /api/kinds.
func (h *httpServerAdapter) Kinds(ctx context.Context) (models.KindsResponse, error) {
	var kinds models.KindsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&kinds).
		Get("/api/kinds")
	if err != nil {
		return models.KindsResponse{}, fmt.Errorf("kinds request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KindsResponse{}, err
	}

	return kinds, nil
}

// CreateCheckout implements [ServerAdapter] via POST /api/checkout.
func (h *httpServerAdapter) CreateCheckout(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error) {
	var session models.CheckoutSession

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&session).
		Post("/api/checkout")
	if err != nil {
		return models.CheckoutSession{}, fmt.Errorf("checkout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckoutSession{}, err
	}

	return session, nil
}

// VerifyCheckout implements [ServerAdapter] via GET /api/checkout/{sessionID}.
func (h *httpServerAdapter) VerifyCheckout(ctx context.Context, sessionID string) (models.Verification, error) {
	var verification models.Verification

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("sessionID", sessionID).
		SetResult(&verification).
		Get("/api/checkout/{sessionID}")
	if err != nil {
		return models.Verification{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Verification{}, err
	}

	return verification, nil
}

// DownloadArtifact implements [ServerAdapter] via
// GET /api/artifacts/{format}?size=N with the download token as bearer.
func (h *httpServerAdapter) DownloadArtifact(ctx context.Context, token string, req models.ExportRequest) (models.Artifact, error) {
	r := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("format", string(req.Format))
	if req.Size > 0 {
		r.SetQueryParam("size", strconv.Itoa(req.Size))
	}

	resp, err := r.Get("/api/artifacts/{format}")
	if err != nil {
		return models.Artifact{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Artifact{}, err
	}

	return models.Artifact{Format: req.Format, Data: resp.Body()}, nil
}
