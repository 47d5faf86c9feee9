// Package store persists catalog records in a document database.
package store

import (
	"context"

	"github.com/fairyhunter13/catalog-console/internal/model"
)

// ProductStore is the persistence contract for products. List returns
// records newest first. Replace and Delete return model.ErrNotFound for
// an unknown id.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	Insert(ctx context.Context, f model.ProductFields) (model.Product, error)
	Replace(ctx context.Context, id string, f model.ProductFields) (model.Product, error)
	Delete(ctx context.Context, id string) error
}

// OrderStore is the persistence contract for orders. The current API
// surface only replaces and deletes orders by id; Insert exists for
// seeding and tests.
type OrderStore interface {
	Insert(ctx context.Context, f model.OrderFields) (model.Order, error)
	Replace(ctx context.Context, id string, f model.OrderFields) (model.Order, error)
	Delete(ctx context.Context, id string) error
}
