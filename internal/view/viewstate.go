package view

import (
	"errors"

	"inventory/internal/models"
)

// ErrNoProductID is returned when an edit is started on a product that
// lacks an identifier.
var ErrNoProductID = errors.New("product has no ID")

// Mode is the client's display mode.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeCreating
	ModeEditing
)

// Draft holds the form fields for a create or edit in progress.
type Draft struct {
	Name     string
	Price    float64
	Quantity int
	Category string
}

// State is the client's transient view state: one of Browsing{filter},
// Creating{draft} or Editing{id, draft}. Values are immutable;
// transitions return a new State. The constructors are the only way to
// reach the Creating and Editing modes, so an editing state always
// carries the id it was loaded from.
type State struct {
	mode   Mode
	filter string
	editID string
	draft  Draft
}

// NewState returns the initial browsing state with the All filter.
func NewState() State {
	return State{mode: ModeBrowsing, filter: AllCategories}
}

// Mode reports the current display mode.
func (s State) Mode() Mode { return s.mode }

// Filter reports the selected category filter. It survives form
// round-trips so that saving or cancelling returns to the same view.
func (s State) Filter() string { return s.filter }

// Draft returns the form draft. Meaningful only while creating or
// editing.
func (s State) Draft() Draft { return s.draft }

// EditID returns the id of the product being edited, or "" when not in
// the editing mode.
func (s State) EditID() string {
	if s.mode != ModeEditing {
		return ""
	}
	return s.editID
}

// SetFilter selects a category filter while browsing.
func (s State) SetFilter(filter string) State {
	s.filter = filter
	return s
}

// StartAdd moves to the creating mode with an empty draft.
func (s State) StartAdd() State {
	s.mode = ModeCreating
	s.editID = ""
	s.draft = Draft{}
	return s
}

// StartEdit moves to the editing mode with the draft pre-populated from
// the selected product. Fails when the product has no identifier.
func (s State) StartEdit(p models.Product) (State, error) {
	if p.ID == "" {
		return s, ErrNoProductID
	}
	s.mode = ModeEditing
	s.editID = p.ID
	s.draft = Draft{
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		Category: p.Category,
	}
	return s, nil
}

// WithDraft replaces the form draft while creating or editing.
func (s State) WithDraft(d Draft) State {
	if s.mode == ModeBrowsing {
		return s
	}
	s.draft = d
	return s
}

// Cancel abandons the form and returns to browsing, keeping the filter.
func (s State) Cancel() State {
	return s.reset()
}

// Saved acknowledges a successful save and returns to browsing, keeping
// the filter. The caller refreshes the product list separately.
func (s State) Saved() State {
	return s.reset()
}

func (s State) reset() State {
	s.mode = ModeBrowsing
	s.editID = ""
	s.draft = Draft{}
	return s
}
