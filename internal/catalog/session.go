package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/fairyhunter13/catalog-console/internal/model"
	"github.com/spf13/cast"
)

// Draft holds the editable form fields as entered. Price and Stock stay
// strings until Validate parses them. An empty EditingID means the
// draft creates a new product; otherwise it updates that id.
type Draft struct {
	Name      string
	Price     string
	Stock     string
	EditingID string
}

// Session tracks whether the user is creating a new product or editing
// an identified existing one. The draft is ephemeral: it is reset on
// successful submit, cancel, or dismiss.
type Session struct {
	open  bool
	draft Draft
}

// Begin opens the session. A nil product starts a blank create draft; a
// product starts an edit draft populated from its current values, with
// numbers stringified for form binding.
func (s *Session) Begin(p *model.Product) {
	s.open = true
	if p == nil {
		s.draft = Draft{}
		return
	}
	s.draft = Draft{
		Name:      p.Name,
		Price:     strconv.FormatFloat(p.Price, 'f', -1, 64),
		Stock:     strconv.Itoa(p.Stock),
		EditingID: p.ID,
	}
}

// Open reports whether a session is in progress.
func (s *Session) Open() bool { return s.open }

// Draft returns the current draft.
func (s *Session) Draft() Draft { return s.draft }

// SetDraft stores edited field values without changing the session
// mode, keeping the draft intact after a failed submit.
func (s *Session) SetDraft(d Draft) { s.draft = d }

// Cancel discards the draft unconditionally and closes the session. No
// store interaction happens here.
func (s *Session) Cancel() {
	s.open = false
	s.draft = Draft{}
}

// Validate checks a draft and returns the parsed fields: name non-empty
// after trimming, price a finite number >= 0, stock an integer >= 0.
// The returned error names the first field that failed.
func Validate(d Draft) (model.ProductFields, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return model.ProductFields{}, &model.ValidationError{Field: "name", Message: "name is required"}
	}
	price, err := cast.ToFloat64E(d.Price)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return model.ProductFields{}, &model.ValidationError{Field: "price", Message: "price must be a non-negative number"}
	}
	stock, err := cast.ToIntE(d.Stock)
	if err != nil || stock < 0 {
		return model.ProductFields{}, &model.ValidationError{Field: "stock", Message: "stock must be a non-negative integer"}
	}
	return model.ProductFields{Name: name, Price: price, Stock: stock}, nil
}
