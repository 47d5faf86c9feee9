package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("RATE_URL", "")
	t.Setenv("RATE_TIMEOUT", "")
	t.Setenv("RATE_FALLBACK", "")
	t.Setenv("CURRENCY_CODE", "")
	t.Setenv("CURRENCY_SYMBOL", "")
	c := Load()
	if c.HTTPAddr != ":4000" {
		t.Fatalf("HTTPAddr default")
	}
	if c.ShutdownTimeout != 15*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.MongoURI != "" || c.MongoDB != "catalog" {
		t.Fatalf("mongo defaults")
	}
	if c.APIBaseURL != "http://localhost:4000/api" {
		t.Fatalf("APIBaseURL default")
	}
	if c.CurrencyCode != "INR" || c.CurrencySymbol != "₹" {
		t.Fatalf("currency defaults")
	}
	if c.RateFallback != 83 {
		t.Fatalf("RateFallback default")
	}
	if c.RateURL != "https://api.exchangerate.host/latest?base=USD&symbols=INR" {
		t.Fatalf("RateURL default, got %s", c.RateURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB", "shop")
	t.Setenv("API_BASE_URL", "http://api.internal/api")
	t.Setenv("CURRENCY_CODE", "EUR")
	t.Setenv("CURRENCY_SYMBOL", "€")
	t.Setenv("RATE_FALLBACK", "0.92")
	t.Setenv("RATE_URL", "")
	c := Load()
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
	if c.MongoURI != "mongodb://localhost:27017" || c.MongoDB != "shop" {
		t.Fatalf("mongo env")
	}
	if c.CurrencyCode != "EUR" || c.CurrencySymbol != "€" {
		t.Fatalf("currency env")
	}
	if c.RateFallback != 0.92 {
		t.Fatalf("RateFallback env")
	}
	if c.RateURL != "https://api.exchangerate.host/latest?base=USD&symbols=EUR" {
		t.Fatalf("RateURL must follow currency code, got %s", c.RateURL)
	}
}

func TestLoadBadNumbersFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("RATE_FALLBACK", "many")
	c := Load()
	if c.ShutdownTimeout != 15*time.Second {
		t.Fatalf("bad duration must keep default")
	}
	if c.RateFallback != 83 {
		t.Fatalf("bad float must keep default")
	}
}
