// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - SheetID: Google spreadsheet ID (enables the Sheets backend)
  - SheetName: Target sheet/tab name (default: Sheet1)
  - ServiceAccountEmail, PrivateKey: Sheets API credentials
  - DatabaseURL: sqlite file or postgres URL (enables the SQL backend)

# CLI Flags

	-p          Server port
	-sheet-id   Google spreadsheet ID
	-sheet-name Target sheet/tab name
	-d          Database URL
	-sa-email   Service account email
	-sa-key     Service account private key PEM

# Environment Variables

Flags fall back to environment variables:

	PORT                         → -p
	GOOGLE_SHEET_ID              → -sheet-id
	GOOGLE_SHEET_NAME            → -sheet-name
	DATABASE_URL                 → -d
	GOOGLE_SERVICE_ACCOUNT_EMAIL → -sa-email
	GOOGLE_PRIVATE_KEY           → -sa-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if no usable backend is configured:

  - at least one of GOOGLE_SHEET_ID and DATABASE_URL must be provided
  - a sheet ID without service-account credentials is rejected at startup
    rather than failing on the first request

When both backends are configured the spreadsheet wins (Config.UsesSheets).
*/
package cliparse
