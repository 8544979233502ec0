// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers for the MBTI
backend.

# Request Logging

WithLogging wraps a handler and logs request start/completion with a
generated request id and duration:

	mux.HandleFunc("POST /api/submit", middleware.WithLogging(h.Submit))

# JSON Helpers

JSONResponse and ErrorResponse write consistent JSON bodies; ParseJSONBody
decodes a request body with a 10MB cap (base64 sheet photos are large, but
not that large).

# CORS

CORS allows any origin, mirroring the upload frontend being served from a
different host. Preflight OPTIONS requests are answered directly.
*/
package middleware
