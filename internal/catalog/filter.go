package catalog

import (
	"strings"

	"github.com/fairyhunter13/catalog-console/internal/model"
)

// Filter returns the order-preserving subsequence of products whose
// name contains query case-insensitively. An empty or all-space query
// returns products unchanged. Results are derived fresh on every call;
// nothing is cached between catalog mutations.
func Filter(products []model.Product, query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
