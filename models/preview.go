// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PreviewResult is one finished terminal preview. Seq orders results of
// concurrent renders; only the latest one is shown.
type PreviewResult struct {
	Seq      uint64
	Payload  string
	Label    string
	Terminal string
	Err      error
}
