package httpapi

import (
	"net/http"

	"github.com/rs/cors"
)

// NewRouter registers HTTP routes and returns the handler with
// middleware. CORS is open to any origin; browser front ends call the
// API cross-origin.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", app.healthHandler)
	mux.HandleFunc("/api/products", app.productsHandler)
	mux.HandleFunc("/api/products/", app.productHandler)
	mux.HandleFunc("/api/orders/", app.orderHandler)
	return WithRequestID(WithLogging(cors.AllowAll().Handler(mux)))
}
