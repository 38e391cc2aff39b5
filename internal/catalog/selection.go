package catalog

import "strings"

// Selection captures what the shopper is currently browsing. At most one
// axis is active after any transition: choosing a category clears the
// query and filters, and so on. Filters is a slice so resolved selections
// can compose, but the transitions below never stack more than one.
type Selection struct {
	Category string        `json:"category,omitempty"`
	Query    string        `json:"query,omitempty"`
	Filters  []NamedFilter `json:"filters,omitempty"`
}

// WithCategory returns a selection scoped to the given category only.
func (s Selection) WithCategory(category string) Selection {
	return Selection{Category: category}
}

// WithQuery returns a selection scoped to the trimmed query only. A blank
// query clears the selection entirely.
func (s Selection) WithQuery(query string) Selection {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Selection{}
	}
	return Selection{Query: trimmed}
}

// WithFilter returns a selection scoped to the named promotion only.
func (s Selection) WithFilter(filter NamedFilter) Selection {
	return Selection{Filters: []NamedFilter{filter}}
}

// Clear drops every axis, returning the shopper to the home page.
func (s Selection) Clear() Selection {
	return Selection{}
}

// IsActive reports whether any axis narrows the catalog.
func (s Selection) IsActive() bool {
	return s.Category != "" || s.Query != "" || len(s.Filters) > 0
}

// View names the screen the storefront is showing.
type View string

const (
	ViewHome     View = "home"
	ViewResults  View = "results"
	ViewWishlist View = "wishlist"
	ViewCart     View = "cart"
)

// ViewState tracks the overlay views. Wishlist and Cart sit on top of
// browsing: opening one pins it until the shopper navigates back, and
// selection changes underneath never force a transition out.
type ViewState struct {
	pinned View
}

// OpenWishlist pins the wishlist view.
func (v *ViewState) OpenWishlist() {
	v.pinned = ViewWishlist
}

// OpenCart pins the cart view.
func (v *ViewState) OpenCart() {
	v.pinned = ViewCart
}

// Back unpins any overlay, returning to browsing.
func (v *ViewState) Back() {
	v.pinned = ""
}

// Current resolves the active view. Without a pinned overlay it derives
// Home or Results from whether the selection narrows the catalog.
func (v *ViewState) Current(sel Selection) View {
	if v.pinned != "" {
		return v.pinned
	}
	if sel.IsActive() {
		return ViewResults
	}
	return ViewHome
}
