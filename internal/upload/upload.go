// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package upload hosts admin-submitted images on an external service.
package upload

import (
	"context"
	"errors"
	"io"
)

// ErrUploadFailed wraps any failure talking to the hosting service.
// Handlers map it to 502; uploads are never retried automatically.
var ErrUploadFailed = errors.New("image upload failed")

// Result is the hosted image reference returned to the caller.
type Result struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Uploader hosts an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename string) (Result, error)
}
