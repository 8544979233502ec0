// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Aritra-2000/MBTI/imagehash"
	"github.com/Aritra-2000/MBTI/middleware"
	"github.com/Aritra-2000/MBTI/models"
	"github.com/Aritra-2000/MBTI/store"
)

type SubmitHandler struct {
	store store.Store
}

func NewSubmitHandler(st store.Store) *SubmitHandler {
	return &SubmitHandler{store: st}
}

// Submit handles POST /api/submit.
//
// Validation happens before any storage access; backend failures are logged
// with detail but reported to the caller as a generic message.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Mbti == "" || req.Score == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields: name, mbti, score")
		return
	}

	fingerprint := req.ImageHash
	if fingerprint == "" && req.ImageBase64 != "" {
		var err error
		fingerprint, err = imagehash.Fingerprint(req.ImageBase64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid imageBase64 provided")
			return
		}
	}
	if fingerprint == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "imageHash or imageBase64 is required")
		return
	}

	rec := models.SubmissionRecord{
		Name:      req.Name,
		Mbti:      req.Mbti,
		Score:     *req.Score,
		ImageHash: fingerprint,
		Date:      time.Now().Format("2006-01-02"),
	}

	inserted, err := h.store.InsertIfAbsent(r.Context(), rec)
	if err != nil {
		slog.Error("submission store failed", "error", err, "image_hash", fingerprint)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !inserted {
		slog.Info("duplicate submission rejected", "image_hash", fingerprint)
		middleware.JSONResponse(w, http.StatusConflict, models.ErrorResponse{
			Error:     "Duplicate submission detected",
			Duplicate: true,
		})
		return
	}

	slog.Info("submission recorded", "name", req.Name, "mbti", req.Mbti, "image_hash", fingerprint)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		OK:        true,
		Duplicate: false,
	})
}
