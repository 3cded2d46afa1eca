package store

import (
	"reflect"
	"testing"

	"github.com/rosedew/blush/internal/catalog"
)

func product(id int, title string) catalog.Product {
	return catalog.Product{ID: id, Title: title, Price: 10}
}

func TestReduce_IsDeterministic(t *testing.T) {
	base := State{
		Catalog: []catalog.Product{product(1, "Serum")},
		Cart:    []CartLine{{Product: product(1, "Serum"), Quantity: 2}},
	}

	actions := []Action{
		SetLoading{Loading: true},
		SetError{Message: "boom"},
		SetCatalog{Products: []catalog.Product{product(2, "Mascara")}},
		Login{Session: Session{Name: "Ada", Email: "ada@example.com"}},
		AddToCart{Product: product(3, "Lip Tint")},
		SetCartQuantity{ProductID: 1, Quantity: 5},
		AddToWishlist{Product: product(2, "Mascara")},
		Logout{},
	}

	for _, a := range actions {
		first := Reduce(base, a)
		second := Reduce(base, a)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("Reduce(%T) not deterministic:\nfirst  %#v\nsecond %#v", a, first, second)
		}
	}
}

func TestReduce_LoadingAndError(t *testing.T) {
	s := Reduce(State{}, SetError{Message: "fetch failed"})
	if s.Err != "fetch failed" || s.Loading {
		t.Fatalf("after SetError: %#v, want error recorded and loading false", s)
	}

	// SetLoading must not clear a recorded error.
	s = Reduce(s, SetLoading{Loading: true})
	if s.Err != "fetch failed" || !s.Loading {
		t.Fatalf("after SetLoading: %#v, want error kept and loading true", s)
	}

	s = Reduce(s, SetCatalog{Products: []catalog.Product{product(1, "Serum")}})
	if s.Loading {
		t.Fatal("SetCatalog should clear the loading flag")
	}
	if len(s.Catalog) != 1 {
		t.Fatalf("catalog = %#v, want 1 product", s.Catalog)
	}

	s = Reduce(s, SetError{Message: ""})
	if s.Err != "" {
		t.Fatalf("empty SetError should clear the error, got %q", s.Err)
	}
}

func TestReduce_CartQuantityInvariant(t *testing.T) {
	s := Reduce(State{}, AddToCart{Product: product(1, "Serum")})

	s = Reduce(s, SetCartQuantity{ProductID: 1, Quantity: 3})
	if got := s.CartQuantity(1); got != 3 {
		t.Fatalf("CartQuantity(1) = %d, want 3", got)
	}
	if len(s.Cart) != 1 {
		t.Fatalf("cart lines = %d, want 1 grouped line", len(s.Cart))
	}

	s = Reduce(s, SetCartQuantity{ProductID: 1, Quantity: 0})
	if got := s.CartQuantity(1); got != 0 {
		t.Fatalf("CartQuantity(1) after zero = %d, want 0", got)
	}
	if len(s.Cart) != 0 {
		t.Fatalf("cart = %#v, want empty after quantity zero", s.Cart)
	}
}

func TestReduce_SetQuantityPreservesOtherLines(t *testing.T) {
	s := State{Cart: []CartLine{
		{Product: product(1, "Serum"), Quantity: 1},
		{Product: product(2, "Mascara"), Quantity: 4},
	}}

	s = Reduce(s, SetCartQuantity{ProductID: 1, Quantity: 7})
	if got := s.CartQuantity(2); got != 4 {
		t.Fatalf("other line quantity = %d, want 4", got)
	}

	// Unknown product ids cannot conjure a line.
	s = Reduce(s, SetCartQuantity{ProductID: 99, Quantity: 2})
	if len(s.Cart) != 2 {
		t.Fatalf("cart lines = %d, want 2 after no-op quantity", len(s.Cart))
	}
}

func TestReduce_AddThenRemove(t *testing.T) {
	s := Reduce(State{}, AddToCart{Product: product(1, "Serum")})
	if s.CartQuantity(1) != 1 || s.CartUnits() != 1 {
		t.Fatalf("after add: %#v, want 1 unit of product 1", s.Cart)
	}

	s = Reduce(s, AddToCart{Product: product(1, "Serum")})
	if s.CartQuantity(1) != 2 || len(s.Cart) != 1 {
		t.Fatalf("after second add: %#v, want single line quantity 2", s.Cart)
	}

	s = Reduce(s, RemoveFromCart{ProductID: 1})
	if len(s.Cart) != 0 {
		t.Fatalf("after remove: %#v, want empty cart", s.Cart)
	}
}

func TestReduce_WishlistUniqueness(t *testing.T) {
	p := product(1, "Serum")

	s := Reduce(State{}, AddToWishlist{Product: p})
	s = Reduce(s, AddToWishlist{Product: p})

	count := 0
	for _, w := range s.Wishlist {
		if w.ID == 1 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("wishlist entries for id 1 = %d, want 1", count)
	}

	s = Reduce(s, RemoveFromWishlist{ProductID: 1})
	if s.InWishlist(1) {
		t.Fatal("product still wishlisted after remove")
	}

	// Removing an absent product is a no-op.
	s = Reduce(s, RemoveFromWishlist{ProductID: 42})
	if len(s.Wishlist) != 0 {
		t.Fatalf("wishlist = %#v, want empty", s.Wishlist)
	}
}

func TestReduce_LogoutClearsSessionScopedData(t *testing.T) {
	s := State{
		Session:  &Session{Name: "Ada", Email: "ada@example.com"},
		Catalog:  []catalog.Product{product(1, "Serum"), product(2, "Mascara")},
		Cart:     []CartLine{{Product: product(1, "Serum"), Quantity: 2}},
		Wishlist: []catalog.Product{product(2, "Mascara")},
	}

	got := Reduce(s, Logout{})
	if got.Session != nil || got.LoggedIn() {
		t.Fatalf("session = %#v, want nil after logout", got.Session)
	}
	if len(got.Cart) != 0 || len(got.Wishlist) != 0 {
		t.Fatalf("cart/wishlist not cleared: %#v / %#v", got.Cart, got.Wishlist)
	}
	if len(got.Catalog) != 2 {
		t.Fatalf("catalog = %#v, want unchanged", got.Catalog)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	original := State{
		Cart: []CartLine{{Product: product(1, "Serum"), Quantity: 1}},
	}
	keep := State{
		Cart: []CartLine{{Product: product(1, "Serum"), Quantity: 1}},
	}

	_ = Reduce(original, AddToCart{Product: product(1, "Serum")})
	_ = Reduce(original, SetCartQuantity{ProductID: 1, Quantity: 9})

	if !reflect.DeepEqual(original, keep) {
		t.Fatalf("input state mutated: %#v", original)
	}
}

func TestStore_DispatchAndSnapshotIsolation(t *testing.T) {
	s := New()
	s.Dispatch(AddToCart{Product: product(1, "Serum")})

	snap := s.State()
	snap.Cart[0].Quantity = 99

	if got := s.State().CartQuantity(1); got != 1 {
		t.Fatalf("store quantity = %d after mutating a snapshot, want 1", got)
	}
}

func TestStore_SubscribersSeeTransitionsInOrder(t *testing.T) {
	s := New()

	var quantities []int
	cancel := s.Subscribe(func(prev, next State) {
		quantities = append(quantities, next.CartQuantity(1))
	})

	s.Dispatch(AddToCart{Product: product(1, "Serum")})
	s.Dispatch(AddToCart{Product: product(1, "Serum")})
	s.Dispatch(SetCartQuantity{ProductID: 1, Quantity: 5})

	want := []int{1, 2, 5}
	if !reflect.DeepEqual(quantities, want) {
		t.Fatalf("observed quantities = %v, want %v", quantities, want)
	}

	cancel()
	s.Dispatch(ClearCart{})
	if len(quantities) != 3 {
		t.Fatalf("listener ran after cancel: %v", quantities)
	}
}

func TestStore_SubscriberSnapshotsAreIndependent(t *testing.T) {
	s := New()

	s.Subscribe(func(prev, next State) {
		if len(next.Cart) > 0 {
			next.Cart[0].Quantity = 1000
		}
	})

	s.Dispatch(AddToCart{Product: product(1, "Serum")})
	if got := s.State().CartQuantity(1); got != 1 {
		t.Fatalf("store quantity = %d after listener mutation, want 1", got)
	}
}
