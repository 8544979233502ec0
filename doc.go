// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the MBTI answer-sheet backend.

The service accepts recognized answer-sheet submissions (name, detected
personality type, completion score, sheet photo), fingerprints the photo by
content hash, and records each sheet at most once in a spreadsheet-backed
store.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	GOOGLE_SHEET_ID=... GOOGLE_SERVICE_ACCOUNT_EMAIL=... GOOGLE_PRIVATE_KEY=... go run .

Or against a local database:

	go run . -d file:mbti.db -p 5000

# Configuration

One storage backend is required:

  - GOOGLE_SHEET_ID (-sheet-id) with GOOGLE_SERVICE_ACCOUNT_EMAIL and
    GOOGLE_PRIVATE_KEY: Google Sheets backend
  - DATABASE_URL (-d): sqlite file or postgres URL

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - GOOGLE_SHEET_NAME (-sheet-name): Sheet tab (default: Sheet1)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (submit, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - mbti: type-code extraction and completion scoring over OCR text
  - imagehash: content fingerprinting for deduplication
  - store: record store backends (Google Sheets, SQL)
  - client: submission gateway used by the CLI
  - ocr: recognition capability boundary (Azure Computer Vision engine)
  - cliparse: configuration parsing

The companion binary cmd/mbti-scan drives the whole pipeline from an image
file on disk. See package documentation for each component.
*/
package main
