// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/profnitt/clubadmin/internal/upload"
)

// maxUploadSize caps multipart image uploads at 5MB.
const maxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadsHandler hands images to the hosting service.
type UploadsHandler struct {
	uploader upload.Uploader
}

// NewUploadsHandler creates a new UploadsHandler.
func NewUploadsHandler(u upload.Uploader) *UploadsHandler {
	return &UploadsHandler{uploader: u}
}

// Upload handles POST /api/uploads. Expects multipart form data with a
// "file" image field and responds with the hosted URL.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		WriteError(w, http.StatusServiceUnavailable, "uploads_disabled", "Image uploads are not configured", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		WriteBadRequest(w, "Expected a multipart image upload (max 5MB)", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "The \"file\" field is required", nil)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		WriteBadRequest(w, "Only jpg, jpeg, png, and webp images are allowed", nil)
		return
	}

	name := strings.TrimSuffix(filepath.Base(header.Filename), ext)
	result, err := h.uploader.Upload(r.Context(), file, name)
	if err != nil {
		writeEntityError(w, err)
		return
	}

	WriteCreated(w, result)
}
