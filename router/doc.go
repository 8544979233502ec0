// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the MBTI backend.

# Route Registration

NewRouter creates the full handler chain (ServeMux wrapped in CORS):

	h := router.NewRouter(st)

# Endpoints

	GET  /health     - Liveness probe (service identity + server time)
	POST /api/submit - Submit one recognized answer sheet
	GET  /           - API banner

The submission route is wrapped in request logging; CORS applies to the
whole mux so browser preflights succeed for every path.
*/
package router
