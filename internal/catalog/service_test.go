package catalog

import "testing"

func TestCatalogSize(t *testing.T) {
	svc := NewService()
	if got := len(svc.ListAll()); got != 68 {
		t.Fatalf("expected 68 products, got %d", got)
	}
}

func TestFeaturedAndTrendingSlices(t *testing.T) {
	svc := NewService()

	featured := svc.Featured()
	if len(featured) != 8 {
		t.Fatalf("expected 8 featured products, got %d", len(featured))
	}
	wantFeatured := []int{1, 2, 9, 11, 13, 14, 15, 16}
	for i, id := range wantFeatured {
		if featured[i].ID != id {
			t.Fatalf("featured[%d] = %d, want %d", i, featured[i].ID, id)
		}
	}

	trending := svc.Trending()
	if len(trending) != 4 {
		t.Fatalf("expected 4 trending products, got %d", len(trending))
	}
	wantTrending := []int{17, 18, 3, 4}
	for i, id := range wantTrending {
		if trending[i].ID != id {
			t.Fatalf("trending[%d] = %d, want %d", i, trending[i].ID, id)
		}
	}
}

func TestGetProduct(t *testing.T) {
	svc := NewService()

	p, err := svc.Get(61)
	if err != nil {
		t.Fatalf("get product 61: %v", err)
	}
	if p.Name != "Organic Rice 10kg" || p.Category != "Grocery" {
		t.Fatalf("unexpected product %+v", p)
	}

	if _, err := svc.Get(999); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestCategoriesShowcaseCounts(t *testing.T) {
	svc := NewService()
	categories := svc.Categories()

	if len(categories) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(categories))
	}

	want := map[string]int{
		"Electronics":   10,
		"Fashion":       10,
		"Beauty":        8,
		"Home & Living": 8,
		"Sports":        8,
		"Books":         8,
		"Toys":          8,
		"Grocery":       8,
	}
	total := 0
	for _, c := range categories {
		if want[c.Name] != c.Count {
			t.Fatalf("category %s count = %d, want %d", c.Name, c.Count, want[c.Name])
		}
		total += c.Count
	}
	if total != 68 {
		t.Fatalf("category counts sum to %d, want 68", total)
	}
}

func TestViewStateOverlays(t *testing.T) {
	var state ViewState
	sel := Selection{}

	if got := state.Current(sel); got != ViewHome {
		t.Fatalf("expected home view, got %s", got)
	}

	sel = sel.WithCategory("Books")
	if got := state.Current(sel); got != ViewResults {
		t.Fatalf("expected results view, got %s", got)
	}

	state.OpenCart()
	if got := state.Current(sel); got != ViewCart {
		t.Fatalf("expected cart view, got %s", got)
	}

	// Selection changes must not dismiss a pinned overlay.
	sel = sel.WithQuery("rice")
	if got := state.Current(sel); got != ViewCart {
		t.Fatalf("expected cart view to stay pinned, got %s", got)
	}

	state.Back()
	if got := state.Current(sel); got != ViewResults {
		t.Fatalf("expected results after back, got %s", got)
	}

	state.OpenWishlist()
	if got := state.Current(sel); got != ViewWishlist {
		t.Fatalf("expected wishlist view, got %s", got)
	}

	state.Back()
	sel = sel.Clear()
	if got := state.Current(sel); got != ViewHome {
		t.Fatalf("expected home after clearing selection, got %s", got)
	}
}
