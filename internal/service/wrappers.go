// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// CheckoutServiceWrapper decorates a CheckoutService, e.g. with validation.
type CheckoutServiceWrapper interface {
	Wrap(CheckoutService) CheckoutService
}

// ArtifactServiceWrapper decorates an ArtifactService.
type ArtifactServiceWrapper interface {
	Wrap(ArtifactService) ArtifactService
}
