package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/fairyhunter13/catalog-console/internal/model"
	"github.com/fairyhunter13/catalog-console/internal/obs"
	"github.com/fairyhunter13/catalog-console/internal/store"
)

// App holds the stores behind the HTTP surface.
type App struct {
	Products store.ProductStore
	Orders   store.OrderStore
}

func NewApp(products store.ProductStore, orders store.OrderStore) *App {
	return &App{Products: products, Orders: orders}
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

// productsHandler serves the collection endpoint: list and create.
func (a *App) productsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.listProducts(w, r)
	case http.MethodPost:
		a.createProduct(w, r)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// productHandler serves the by-id endpoint: update and delete.
func (a *App) productHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" || strings.Contains(id, "/") {
		WriteJSONError(w, http.StatusNotFound, "Product not found")
		return
	}
	switch r.Method {
	case http.MethodPut:
		a.updateProduct(w, r, id)
	case http.MethodDelete:
		a.deleteProduct(w, r, id)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *App) listProducts(w http.ResponseWriter, r *http.Request) {
	rows, err := a.Products.List(r.Context())
	if err != nil {
		obs.Logger.Error("list_products_error", "error", err, "request_id", RequestIDFromContext(r.Context()))
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if rows == nil {
		rows = []model.Product{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

func (a *App) createProduct(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeProductFields(w, r)
	if !ok {
		return
	}
	p, err := a.Products.Insert(r.Context(), f)
	if err != nil {
		obs.Logger.Error("create_product_error", "error", err, "request_id", RequestIDFromContext(r.Context()))
		WriteJSONError(w, http.StatusBadRequest, "Failed to create product")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

func (a *App) updateProduct(w http.ResponseWriter, r *http.Request, id string) {
	f, ok := decodeProductFields(w, r)
	if !ok {
		return
	}
	p, err := a.Products.Replace(r.Context(), id, f)
	if errors.Is(err, model.ErrNotFound) {
		WriteJSONError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		obs.Logger.Error("update_product_error", "error", err, "request_id", RequestIDFromContext(r.Context()))
		WriteJSONError(w, http.StatusBadRequest, "Failed to update product")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func (a *App) deleteProduct(w http.ResponseWriter, r *http.Request, id string) {
	err := a.Products.Delete(r.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		WriteJSONError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		obs.Logger.Error("delete_product_error", "error", err, "request_id", RequestIDFromContext(r.Context()))
		WriteJSONError(w, http.StatusBadRequest, "Failed to delete product")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// decodeProductFields parses and validates a product payload, writing
// the error response itself when validation fails.
func decodeProductFields(w http.ResponseWriter, r *http.Request) (model.ProductFields, bool) {
	var f model.ProductFields
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return model.ProductFields{}, false
	}
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "name is required")
		return model.ProductFields{}, false
	}
	if math.IsNaN(f.Price) || math.IsInf(f.Price, 0) || f.Price < 0 {
		WriteJSONError(w, http.StatusBadRequest, "price must be a non-negative number")
		return model.ProductFields{}, false
	}
	if f.Stock < 0 {
		WriteJSONError(w, http.StatusBadRequest, "stock must be a non-negative integer")
		return model.ProductFields{}, false
	}
	return f, true
}

// orderHandler serves the order by-id endpoint: update and delete.
func (a *App) orderHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if id == "" || strings.Contains(id, "/") {
		WriteJSONError(w, http.StatusNotFound, "Order not found")
		return
	}
	switch r.Method {
	case http.MethodPut:
		a.updateOrder(w, r, id)
	case http.MethodDelete:
		a.deleteOrder(w, r, id)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *App) updateOrder(w http.ResponseWriter, r *http.Request, id string) {
	var f model.OrderFields
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	f.UserEmail = strings.TrimSpace(f.UserEmail)
	if f.UserEmail == "" {
		WriteJSONError(w, http.StatusBadRequest, "userEmail is required")
		return
	}
	if f.Status == "" {
		f.Status = model.OrderPending
	}
	if !model.ValidOrderStatus(f.Status) {
		WriteJSONError(w, http.StatusBadRequest, "invalid order status")
		return
	}
	for _, it := range f.Items {
		if it.ProductID == "" {
			WriteJSONError(w, http.StatusBadRequest, "item productId is required")
			return
		}
		if it.Quantity < 1 {
			WriteJSONError(w, http.StatusBadRequest, "item quantity must be at least 1")
			return
		}
	}
	if math.IsNaN(f.Total) || math.IsInf(f.Total, 0) || f.Total < 0 {
		WriteJSONError(w, http.StatusBadRequest, "total must be a non-negative number")
		return
	}
	o, err := a.Orders.Replace(r.Context(), id, f)
	if errors.Is(err, model.ErrNotFound) {
		WriteJSONError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		obs.Logger.Error("update_order_error", "error", err, "request_id", RequestIDFromContext(r.Context()))
		WriteJSONError(w, http.StatusBadRequest, "Failed to update order")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(o)
}

func (a *App) deleteOrder(w http.ResponseWriter, r *http.Request, id string) {
	err := a.Orders.Delete(r.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		WriteJSONError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		obs.Logger.Error("delete_order_error", "error", err, "request_id", RequestIDFromContext(r.Context()))
		WriteJSONError(w, http.StatusBadRequest, "Failed to delete order")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
