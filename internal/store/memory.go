package store

import (
	"context"
	"sync"
	"time"

	"github.com/fairyhunter13/catalog-console/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryProducts is an in-memory ProductStore. It keeps records newest
// first so List matches the Mongo sort order. Contents are lost on
// restart; the server falls back to it when no Mongo URI is configured.
type MemoryProducts struct {
	mu    sync.RWMutex
	items []model.Product
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{}
}

func (s *MemoryProducts) List(ctx context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryProducts) Insert(ctx context.Context, f model.ProductFields) (model.Product, error) {
	now := time.Now().UTC()
	p := model.Product{
		ID:        primitive.NewObjectID().Hex(),
		Name:      f.Name,
		Price:     f.Price,
		Stock:     f.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Product{p}, s.items...)
	return p, nil
}

func (s *MemoryProducts) Replace(ctx context.Context, id string, f model.ProductFields) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Name = f.Name
			s.items[i].Price = f.Price
			s.items[i].Stock = f.Stock
			s.items[i].UpdatedAt = time.Now().UTC()
			return s.items[i], nil
		}
	}
	return model.Product{}, model.ErrNotFound
}

func (s *MemoryProducts) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

// MemoryOrders is the in-memory OrderStore counterpart of MemoryProducts.
type MemoryOrders struct {
	mu    sync.RWMutex
	items []model.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{}
}

func (s *MemoryOrders) Insert(ctx context.Context, f model.OrderFields) (model.Order, error) {
	now := time.Now().UTC()
	o := model.Order{
		ID:        primitive.NewObjectID().Hex(),
		UserEmail: f.UserEmail,
		Status:    f.Status,
		Items:     f.Items,
		Total:     f.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if o.Status == "" {
		o.Status = model.OrderPending
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Order{o}, s.items...)
	return o, nil
}

func (s *MemoryOrders) Replace(ctx context.Context, id string, f model.OrderFields) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].UserEmail = f.UserEmail
			s.items[i].Status = f.Status
			s.items[i].Items = f.Items
			s.items[i].Total = f.Total
			s.items[i].UpdatedAt = time.Now().UTC()
			return s.items[i], nil
		}
	}
	return model.Order{}, model.ErrNotFound
}

func (s *MemoryOrders) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}
