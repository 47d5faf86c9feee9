// Package client implements the HTTP side of the record store contract
// exposed by the catalog server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fairyhunter13/catalog-console/internal/model"
)

// ProductClient issues CRUD requests against the products collection.
// Every call reports failure to the caller exactly once; there are no
// retries.
type ProductClient struct {
	baseURL string
	http    *http.Client
}

// NewProductClient returns a client for the store at baseURL (for
// example "http://localhost:4000/api"). A nil hc gets a default client
// with a 10s timeout.
func NewProductClient(baseURL string, hc *http.Client) *ProductClient {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &ProductClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// ListAll fetches the full product collection, newest first.
func (c *ProductClient) ListAll(ctx context.Context) ([]model.Product, error) {
	const op = "list products"
	body, err := doRequest(ctx, c.http, op, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	var out []model.Product
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return nil, &model.RequestError{Op: op, Err: err}
	}
	return out, nil
}

// Create posts fields; the server assigns id and timestamps.
func (c *ProductClient) Create(ctx context.Context, f model.ProductFields) (model.Product, error) {
	const op = "create product"
	return c.roundTrip(ctx, op, http.MethodPost, c.baseURL+"/products", f)
}

// Update replaces the full field set of the product with the given id.
func (c *ProductClient) Update(ctx context.Context, id string, f model.ProductFields) (model.Product, error) {
	const op = "update product"
	return c.roundTrip(ctx, op, http.MethodPut, c.baseURL+"/products/"+id, f)
}

// Remove deletes the product with the given id.
func (c *ProductClient) Remove(ctx context.Context, id string) error {
	const op = "delete product"
	body, err := doRequest(ctx, c.http, op, http.MethodDelete, c.baseURL+"/products/"+id, nil)
	if err != nil {
		return err
	}
	body.Close()
	return nil
}

func (c *ProductClient) roundTrip(ctx context.Context, op, method, url string, f model.ProductFields) (model.Product, error) {
	body, err := doRequest(ctx, c.http, op, method, url, f)
	if err != nil {
		return model.Product{}, err
	}
	defer body.Close()
	var p model.Product
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		return model.Product{}, &model.RequestError{Op: op, Err: err}
	}
	return p, nil
}

// OrderClient issues requests against the orders collection. The
// current surface exposes update and delete by id only.
type OrderClient struct {
	baseURL string
	http    *http.Client
}

func NewOrderClient(baseURL string, hc *http.Client) *OrderClient {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &OrderClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Update replaces the full field set of the order with the given id.
func (c *OrderClient) Update(ctx context.Context, id string, f model.OrderFields) (model.Order, error) {
	const op = "update order"
	body, err := doRequest(ctx, c.http, op, http.MethodPut, c.baseURL+"/orders/"+id, f)
	if err != nil {
		return model.Order{}, err
	}
	defer body.Close()
	var o model.Order
	if err := json.NewDecoder(body).Decode(&o); err != nil {
		return model.Order{}, &model.RequestError{Op: op, Err: err}
	}
	return o, nil
}

// Remove deletes the order with the given id.
func (c *OrderClient) Remove(ctx context.Context, id string) error {
	const op = "delete order"
	body, err := doRequest(ctx, c.http, op, http.MethodDelete, c.baseURL+"/orders/"+id, nil)
	if err != nil {
		return err
	}
	body.Close()
	return nil
}

// doRequest performs one request and maps the response status onto the
// error taxonomy. On success the caller owns the returned body.
func doRequest(ctx context.Context, hc *http.Client, op, method, url string, payload any) (io.ReadCloser, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &model.RequestError{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &model.RequestError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := hc.Do(req)
	if err != nil {
		return nil, &model.RequestError{Op: op, Err: err}
	}
	if err := checkStatus(op, res); err != nil {
		res.Body.Close()
		return nil, err
	}
	return res.Body, nil
}

// checkStatus maps a non-2xx response onto the error taxonomy: 404 to
// ErrNotFound, 400 to ValidationError carrying the server's message,
// anything else to RequestError.
func checkStatus(op string, res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	switch res.StatusCode {
	case http.StatusNotFound:
		return model.ErrNotFound
	case http.StatusBadRequest:
		msg := "invalid request"
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
			msg = body.Error
		}
		return &model.ValidationError{Message: msg}
	default:
		return &model.RequestError{Op: op, Err: fmt.Errorf("unexpected status %d", res.StatusCode)}
	}
}
