// Package config provides runtime configuration values for the server
// and the console client.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds configuration knobs for the HTTP server, the store
// client, and the currency rate lookup.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	MongoURI string
	MongoDB  string

	APIBaseURL     string
	RequestTimeout time.Duration

	RateURL        string
	RateTimeout    time.Duration
	RateFallback   float64
	CurrencyCode   string
	CurrencySymbol string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatenv(key string, def float64) float64 {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults, reading a
// .env file first when one is present.
func Load() Config {
	_ = godotenv.Load()
	code := getenv("CURRENCY_CODE", "INR")
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":4000"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
		MongoURI:        getenv("MONGODB_URI", ""),
		MongoDB:         getenv("MONGODB_DB", "catalog"),
		APIBaseURL:      getenv("API_BASE_URL", "http://localhost:4000/api"),
		RequestTimeout:  durenvs("REQUEST_TIMEOUT", 10),
		RateURL:         getenv("RATE_URL", "https://api.exchangerate.host/latest?base=USD&symbols="+code),
		RateTimeout:     durenvs("RATE_TIMEOUT", 5),
		RateFallback:    floatenv("RATE_FALLBACK", 83),
		CurrencyCode:    code,
		CurrencySymbol:  getenv("CURRENCY_SYMBOL", "₹"),
	}
}
