// Package console binds the catalog core to a front end: it owns the
// session state and turns user intents into store commands. The
// controller is a single-session object; front ends call it from one
// goroutine.
package console

import (
	"context"

	"github.com/fairyhunter13/catalog-console/internal/catalog"
	"github.com/fairyhunter13/catalog-console/internal/model"
	"github.com/fairyhunter13/catalog-console/internal/obs"
	"github.com/fairyhunter13/catalog-console/internal/rate"
)

// Store is the product CRUD surface the controller drives.
type Store interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, f model.ProductFields) (model.Product, error)
	Update(ctx context.Context, id string, f model.ProductFields) (model.Product, error)
	Remove(ctx context.Context, id string) error
}

// Row is one rendered catalog entry. DisplayPrice is the base price
// converted into the display currency.
type Row struct {
	ID           string
	Name         string
	BasePrice    float64
	DisplayPrice string
	Stock        int
}

// View is the derived presentation state: the filtered rows, the total
// catalog size, and the edit session binding.
type View struct {
	Rows      []Row
	Total     int
	Query     string
	ModalOpen bool
	Draft     catalog.Draft
	Fallback  bool
}

// Controller owns the catalog state and edit session for one front-end
// session and dispatches confirmed store operations.
type Controller struct {
	state    *catalog.State
	session  catalog.Session
	store    Store
	rates    *rate.Provider
	query    string
	fallback bool
}

func NewController(store Store, rates *rate.Provider) *Controller {
	return &Controller{state: catalog.NewState(), store: store, rates: rates}
}

// Start fetches the display rate, then loads the catalog. The rate
// fetch completes before the load begins so the first view uses the
// freshest obtainable rate.
func (c *Controller) Start(ctx context.Context) {
	c.rates.Fetch(ctx)
	c.fallback = c.state.Load(ctx, c.store)
	if c.fallback {
		obs.Logger.Warn("catalog_load_fallback", "products", c.state.Len())
	}
}

// Search updates the live query. The filtered view is derived on the
// next View call.
func (c *Controller) Search(text string) {
	c.query = text
}

// AddRequested opens a blank create session.
func (c *Controller) AddRequested() {
	c.session.Begin(nil)
}

// EditRequested opens an edit session for id, reporting whether the id
// was found in the catalog.
func (c *Controller) EditRequested(id string) bool {
	for _, p := range c.state.Products() {
		if p.ID == id {
			c.session.Begin(&p)
			return true
		}
	}
	return false
}

// DeleteRequested removes id from the store and, on success, from the
// catalog. On failure the catalog is untouched and the error is
// returned for the front end to surface. Confirmation happens in the
// front end before this call.
func (c *Controller) DeleteRequested(ctx context.Context, id string) error {
	if err := c.store.Remove(ctx, id); err != nil {
		return err
	}
	c.state.ApplyDelete(id)
	return nil
}

// FormSubmitted validates the draft and dispatches create or update
// depending on the draft's editing id. On success the store-confirmed
// record is applied to the catalog and the session ends; on failure the
// session stays open with the draft intact and the error is returned.
func (c *Controller) FormSubmitted(ctx context.Context, d catalog.Draft) error {
	fields, err := catalog.Validate(d)
	if err != nil {
		c.session.SetDraft(d)
		return err
	}
	if d.EditingID != "" {
		updated, err := c.store.Update(ctx, d.EditingID, fields)
		if err != nil {
			c.session.SetDraft(d)
			return err
		}
		c.state.ApplyUpdate(updated)
	} else {
		created, err := c.store.Create(ctx, fields)
		if err != nil {
			c.session.SetDraft(d)
			return err
		}
		c.state.ApplyCreate(created)
	}
	c.session.Cancel()
	return nil
}

// ModalDismissed discards the draft and closes the session.
func (c *Controller) ModalDismissed() {
	c.session.Cancel()
}

// View derives the filtered, currency-converted presentation state.
func (c *Controller) View() View {
	matches := catalog.Filter(c.state.Products(), c.query)
	rows := make([]Row, 0, len(matches))
	for _, p := range matches {
		rows = append(rows, Row{
			ID:           p.ID,
			Name:         p.Name,
			BasePrice:    p.Price,
			DisplayPrice: c.rates.Format(p.Price),
			Stock:        p.Stock,
		})
	}
	return View{
		Rows:      rows,
		Total:     c.state.Len(),
		Query:     c.query,
		ModalOpen: c.session.Open(),
		Draft:     c.session.Draft(),
		Fallback:  c.fallback,
	}
}
