// Package model defines domain types shared by the catalog server and clients.
package model

import "time"

// Product is a catalog record. The store assigns ID and timestamps on
// creation; ID is immutable afterwards. Price is in the base currency (USD).
//
// The JSON key for ID stays "_id", which is the wire format the store
// contract exposes.
type Product struct {
	ID        string    `json:"_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Price     float64   `json:"price" bson:"price"`
	Stock     int       `json:"stock" bson:"stock"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProductFields is the writable subset of Product carried by create and
// update requests.
type ProductFields struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
	Stock int     `json:"stock" bson:"stock"`
}

// Order statuses.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// OrderItem references a product inside an order.
type OrderItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Order is an order record. Orders are reached only through the store
// contract (update and delete by id); they never enter the catalog core.
type Order struct {
	ID        string      `json:"_id" bson:"_id"`
	UserEmail string      `json:"userEmail" bson:"userEmail"`
	Status    string      `json:"status" bson:"status"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// OrderFields is the writable subset of Order.
type OrderFields struct {
	UserEmail string      `json:"userEmail" bson:"userEmail"`
	Status    string      `json:"status" bson:"status"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
}
