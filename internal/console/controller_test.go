package console

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fairyhunter13/catalog-console/internal/catalog"
	"github.com/fairyhunter13/catalog-console/internal/client"
	httpapi "github.com/fairyhunter13/catalog-console/internal/http"
	"github.com/fairyhunter13/catalog-console/internal/model"
	"github.com/fairyhunter13/catalog-console/internal/obs"
	"github.com/fairyhunter13/catalog-console/internal/rate"
	"github.com/fairyhunter13/catalog-console/internal/store"
)

func setup(t *testing.T) (*store.MemoryProducts, *Controller) {
	t.Helper()
	obs.InitLogger(false)
	products := store.NewMemoryProducts()
	srv := httptest.NewServer(httpapi.NewRouter(httpapi.NewApp(products, store.NewMemoryOrders())))
	t.Cleanup(srv.Close)

	rateSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"INR":80}}`))
	}))
	t.Cleanup(rateSrv.Close)

	pc := client.NewProductClient(srv.URL+"/api", nil)
	rates := rate.NewProvider(rateSrv.URL, "INR", "₹", 83, nil)
	return products, NewController(pc, rates)
}

func TestStartLoadsAndFilters(t *testing.T) {
	products, ctrl := setup(t)
	_, _ = products.Insert(context.Background(), model.ProductFields{Name: "Mug", Price: 10, Stock: 5})

	ctrl.Start(context.Background())
	if v := ctrl.View(); v.Fallback || v.Total != 1 {
		t.Fatalf("unexpected view: %+v", v)
	}

	ctrl.Search("mug")
	v := ctrl.View()
	if len(v.Rows) != 1 || v.Rows[0].Name != "Mug" {
		t.Fatalf("expected single match, got %+v", v.Rows)
	}
	if v.Rows[0].DisplayPrice != "₹800.00" {
		t.Fatalf("expected converted price, got %s", v.Rows[0].DisplayPrice)
	}

	ctrl.Search("cup")
	if v := ctrl.View(); len(v.Rows) != 0 {
		t.Fatalf("expected no matches, got %+v", v.Rows)
	}
}

func TestStartFallbackOnLoadFailure(t *testing.T) {
	obs.InitLogger(false)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	pc := client.NewProductClient(srv.URL+"/api", nil)
	rates := rate.NewProvider(srv.URL, "INR", "₹", 83, nil)
	ctrl := NewController(pc, rates)

	ctrl.Start(context.Background())
	v := ctrl.View()
	if !v.Fallback {
		t.Fatalf("expected fallback view")
	}
	if v.Total != 3 {
		t.Fatalf("expected demo set of 3, got %d", v.Total)
	}
	if rates.Rate() != 83 {
		t.Fatalf("rate fetch failure must keep fallback, got %v", rates.Rate())
	}
}

func TestCreateFlowPrepends(t *testing.T) {
	products, ctrl := setup(t)
	_, _ = products.Insert(context.Background(), model.ProductFields{Name: "Mug", Price: 10, Stock: 5})
	ctrl.Start(context.Background())

	ctrl.AddRequested()
	if !ctrl.View().ModalOpen {
		t.Fatalf("expected open session")
	}
	d := ctrl.View().Draft
	d.Name = "Tee"
	d.Price = "19.99"
	d.Stock = "42"
	if err := ctrl.FormSubmitted(context.Background(), d); err != nil {
		t.Fatalf("submit: %v", err)
	}
	v := ctrl.View()
	if v.ModalOpen {
		t.Fatalf("session must end on success")
	}
	if v.Total != 2 || v.Rows[0].Name != "Tee" {
		t.Fatalf("expected new product first, got %+v", v.Rows)
	}
}

func TestEditFlowUpdatesEntry(t *testing.T) {
	products, ctrl := setup(t)
	p, _ := products.Insert(context.Background(), model.ProductFields{Name: "Mug", Price: 10, Stock: 5})
	ctrl.Start(context.Background())

	if !ctrl.EditRequested(p.ID) {
		t.Fatalf("edit rejected")
	}
	d := ctrl.View().Draft
	if d.EditingID != p.ID || d.Name != "Mug" || d.Price != "10" || d.Stock != "5" {
		t.Fatalf("draft not populated: %+v", d)
	}
	d.Price = "12.5"
	if err := ctrl.FormSubmitted(context.Background(), d); err != nil {
		t.Fatalf("submit: %v", err)
	}
	v := ctrl.View()
	if v.Total != 1 || v.Rows[0].BasePrice != 12.5 {
		t.Fatalf("entry not updated: %+v", v.Rows)
	}
}

func TestEditRequestedUnknownID(t *testing.T) {
	_, ctrl := setup(t)
	ctrl.Start(context.Background())
	if ctrl.EditRequested("absent") {
		t.Fatalf("expected unknown id to be rejected")
	}
	if ctrl.View().ModalOpen {
		t.Fatalf("session must stay closed")
	}
}

func TestDeleteFlow(t *testing.T) {
	products, ctrl := setup(t)
	p, _ := products.Insert(context.Background(), model.ProductFields{Name: "Mug", Price: 10, Stock: 5})
	ctrl.Start(context.Background())

	if err := ctrl.DeleteRequested(context.Background(), p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if v := ctrl.View(); v.Total != 0 {
		t.Fatalf("expected empty catalog, got %+v", v)
	}
	if err := ctrl.DeleteRequested(context.Background(), p.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type failingStore struct {
	listed []model.Product
}

func (f *failingStore) ListAll(ctx context.Context) ([]model.Product, error) {
	return f.listed, nil
}

func (f *failingStore) Create(ctx context.Context, _ model.ProductFields) (model.Product, error) {
	return model.Product{}, &model.RequestError{Op: "create product", Err: errors.New("connection reset")}
}

func (f *failingStore) Update(ctx context.Context, _ string, _ model.ProductFields) (model.Product, error) {
	return model.Product{}, &model.RequestError{Op: "update product", Err: errors.New("connection reset")}
}

func (f *failingStore) Remove(ctx context.Context, _ string) error {
	return &model.RequestError{Op: "delete product", Err: errors.New("connection reset")}
}

func TestSubmitFailureLeavesStateIntact(t *testing.T) {
	obs.InitLogger(false)
	st := &failingStore{listed: []model.Product{{ID: "p1", Name: "Mug", Price: 10, Stock: 5}}}
	rates := rate.NewProvider("http://127.0.0.1:0", "INR", "₹", 83, nil)
	ctrl := NewController(st, rates)
	ctrl.Start(context.Background())

	if !ctrl.EditRequested("p1") {
		t.Fatalf("edit rejected")
	}
	d := ctrl.View().Draft
	d.Price = "99"
	err := ctrl.FormSubmitted(context.Background(), d)
	var rerr *model.RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RequestError, got %v", err)
	}

	v := ctrl.View()
	if !v.ModalOpen {
		t.Fatalf("session must stay open after failed submit")
	}
	if v.Draft.Price != "99" || v.Draft.EditingID != "p1" {
		t.Fatalf("draft lost: %+v", v.Draft)
	}
	if got := v.Rows[0]; got.BasePrice != 10 || got.Name != "Mug" || got.Stock != 5 {
		t.Fatalf("catalog changed after failed submit: %+v", got)
	}
}

func TestDeleteFailureLeavesCatalog(t *testing.T) {
	obs.InitLogger(false)
	st := &failingStore{listed: []model.Product{{ID: "p1", Name: "Mug"}}}
	ctrl := NewController(st, rate.NewProvider("http://127.0.0.1:0", "INR", "₹", 83, nil))
	ctrl.Start(context.Background())

	if err := ctrl.DeleteRequested(context.Background(), "p1"); err == nil {
		t.Fatalf("expected error")
	}
	if ctrl.View().Total != 1 {
		t.Fatalf("catalog changed after failed delete")
	}
}

func TestValidationFailureKeepsDraft(t *testing.T) {
	_, ctrl := setup(t)
	ctrl.Start(context.Background())
	ctrl.AddRequested()
	d := catalog.Draft{Name: "", Price: "5", Stock: "1"}
	err := ctrl.FormSubmitted(context.Background(), d)
	var verr *model.ValidationError
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Fatalf("expected name validation error, got %v", err)
	}
	if v := ctrl.View(); !v.ModalOpen || v.Total != 0 {
		t.Fatalf("unexpected view after validation failure: %+v", v)
	}
}

func TestModalDismissedDiscardsDraft(t *testing.T) {
	_, ctrl := setup(t)
	ctrl.Start(context.Background())
	ctrl.AddRequested()
	ctrl.ModalDismissed()
	if v := ctrl.View(); v.ModalOpen || v.Draft != (catalog.Draft{}) {
		t.Fatalf("draft survived dismiss: %+v", v)
	}
}
