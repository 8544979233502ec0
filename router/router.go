// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Aritra-2000/MBTI/handlers"
	"github.com/Aritra-2000/MBTI/middleware"
	"github.com/Aritra-2000/MBTI/store"
)

func NewRouter(st store.Store) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	submitHandler := handlers.NewSubmitHandler(st)

	// Health check
	mux.HandleFunc("GET /health", handlers.Health)

	// Submission endpoint
	mux.HandleFunc("POST /api/submit", middleware.WithLogging(submitHandler.Submit))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mbti-backend API v1"))
	})

	// The frontend runs on a different origin, so CORS wraps everything
	// (including preflight OPTIONS).
	return middleware.CORS(mux)
}
