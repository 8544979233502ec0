// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/Aritra-2000/MBTI/middleware"
	"github.com/Aritra-2000/MBTI/models"
)

// Health handles GET /health: service identity and current server time,
// no business logic.
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		OK:      true,
		Service: models.ServiceName,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
