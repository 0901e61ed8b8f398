package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	defaultVATRate         = "0.20"
	defaultPaymentTermDays = 30
	defaultCurrencySymbol  = "€"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

// Config holds the platform settings.
type Config struct {
	VATRate         decimal.Decimal // TVA applied to issued invoices
	PaymentTermDays int             // days between issue and due date
	CurrencySymbol  string

	LogLevel  string
	LogFormat string // text or json
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to defaults.
func FromEnv() (Config, error) {
	vat, err := decimal.NewFromString(getenv("MULTISALES_VAT_RATE", defaultVATRate))
	if err != nil {
		return Config{}, fmt.Errorf("MULTISALES_VAT_RATE must be a decimal: %w", err)
	}
	if vat.IsNegative() {
		return Config{}, fmt.Errorf("MULTISALES_VAT_RATE must be >= 0")
	}

	termDays := defaultPaymentTermDays
	if v := os.Getenv("MULTISALES_PAYMENT_TERM_DAYS"); v != "" {
		termDays, err = strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("MULTISALES_PAYMENT_TERM_DAYS must be number: %w", err)
		}
		if termDays < 0 {
			return Config{}, fmt.Errorf("MULTISALES_PAYMENT_TERM_DAYS must be >= 0")
		}
	}

	cfg := Config{
		VATRate:         vat,
		PaymentTermDays: termDays,
		CurrencySymbol:  getenv("MULTISALES_CURRENCY_SYMBOL", defaultCurrencySymbol),
		LogLevel:        getenv("LOG_LEVEL", defaultLogLevel),
		LogFormat:       getenv("LOG_FORMAT", defaultLogFormat),
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
