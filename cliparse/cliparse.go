package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port int

	// Google Sheets backend
	SheetID             string
	SheetName           string
	ServiceAccountEmail string
	PrivateKey          string

	// SQL backend (sqlite or postgres, by URL scheme)
	DatabaseURL string
}

// UsesSheets reports whether the Sheets backend is configured. When both a
// sheet ID and a database URL are present the sheet wins, matching the
// original deployment where the spreadsheet is the system of record.
func (c Config) UsesSheets() bool {
	return c.SheetID != ""
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mbti-backend", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.SheetID, "sheet-id", "", "Google spreadsheet ID")
	fs.StringVar(&cfg.SheetName, "sheet-name", "", "Target sheet/tab name")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite file or postgres URL)")

	// Credentials (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ServiceAccountEmail, "sa-email", "", "Service account email (prefer env)")
	fs.StringVar(&cfg.PrivateKey, "sa-key", "", "Service account private key PEM (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.SheetID == "" {
		cfg.SheetID = os.Getenv("GOOGLE_SHEET_ID")
	}
	if cfg.SheetName == "" {
		cfg.SheetName = os.Getenv("GOOGLE_SHEET_NAME")
	}
	if cfg.SheetName == "" {
		cfg.SheetName = "Sheet1"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Credentials only matter for the Sheets backend
	if cfg.ServiceAccountEmail == "" {
		cfg.ServiceAccountEmail = os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL")
	}
	if cfg.PrivateKey == "" {
		cfg.PrivateKey = os.Getenv("GOOGLE_PRIVATE_KEY")
	}

	if cfg.SheetID == "" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("storage backend required (GOOGLE_SHEET_ID or DATABASE_URL)")
	}
	if cfg.SheetID != "" {
		if cfg.ServiceAccountEmail == "" || cfg.PrivateKey == "" {
			return Config{}, errors.New("GOOGLE_SERVICE_ACCOUNT_EMAIL and GOOGLE_PRIVATE_KEY required for the Sheets backend")
		}
	}

	return cfg, nil
}
