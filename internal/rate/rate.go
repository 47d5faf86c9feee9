// Package rate obtains the display-currency conversion rate.
package rate

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

// Provider converts base-currency prices into a display currency. The
// rate starts at a fixed fallback and is overwritten at most once by a
// successful Fetch; it is never re-fetched afterwards.
type Provider struct {
	url    string
	code   string
	symbol string
	http   *http.Client
	rate   float64
}

// NewProvider returns a provider whose rate is the fallback until Fetch
// succeeds. A nil hc gets a default client with a 5s timeout.
func NewProvider(url, code, symbol string, fallback float64, hc *http.Client) *Provider {
	if hc == nil {
		hc = &http.Client{Timeout: 5 * time.Second}
	}
	return &Provider{url: url, code: code, symbol: symbol, http: hc, rate: fallback}
}

// Fetch performs one rate lookup against a source returning
// {"rates":{CODE: n}}. Any failure — transport, status, malformed body,
// non-finite or non-positive value — leaves the current rate unchanged.
// Fetch never reports an error to the caller.
func (p *Provider) Fetch(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return
	}
	res, err := p.http.Do(req)
	if err != nil {
		return
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return
	}
	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return
	}
	r, ok := body.Rates[p.code]
	if !ok || math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return
	}
	p.rate = r
}

// Rate returns the current conversion multiplier.
func (p *Provider) Rate() float64 { return p.rate }

// Code returns the display currency code.
func (p *Provider) Code() string { return p.code }

// Symbol returns the display currency symbol.
func (p *Provider) Symbol() string { return p.symbol }

// Convert returns price in the display currency, rounded to 2 decimals.
func (p *Provider) Convert(price float64) float64 {
	return math.Round(price*p.rate*100) / 100
}

// Format renders a converted price with the currency symbol.
func (p *Provider) Format(price float64) string {
	return fmt.Sprintf("%s%.2f", p.symbol, p.Convert(price))
}
