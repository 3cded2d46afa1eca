package store

import "github.com/rosedew/blush/internal/catalog"

// Action is a tagged instruction describing a single intended state change.
// The set of actions is closed: only the types in this file implement it.
type Action interface {
	isAction()
}

// SetLoading toggles the catalog loading flag. It does not clear a previously
// recorded error.
type SetLoading struct {
	Loading bool
}

// SetError records a user-visible error message and clears the loading flag.
// An empty message clears the error.
type SetError struct {
	Message string
}

// SetCatalog replaces the catalog wholesale and clears the loading flag.
type SetCatalog struct {
	Products []catalog.Product
}

// Login establishes an authenticated session.
type Login struct {
	Session Session
}

// Logout clears the session along with the cart and wishlist. The catalog is
// left untouched.
type Logout struct{}

// AddToCart adds one unit of a product, growing an existing line's quantity
// when the product is already in the cart.
type AddToCart struct {
	Product catalog.Product
}

// RemoveFromCart removes a product's cart line entirely.
type RemoveFromCart struct {
	ProductID int
}

// SetCartQuantity sets the exact quantity for a product already in the cart.
// A quantity of zero (or less) removes the line. Products not in the cart are
// left alone: a quantity cannot conjure a product record.
type SetCartQuantity struct {
	ProductID int
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// ReplaceCart replaces the cart wholesale. Used by hydration.
type ReplaceCart struct {
	Lines []CartLine
}

// AddToWishlist inserts a product into the wishlist. Adding a product that is
// already present is a no-op.
type AddToWishlist struct {
	Product catalog.Product
}

// RemoveFromWishlist removes a product from the wishlist if present.
type RemoveFromWishlist struct {
	ProductID int
}

// ReplaceWishlist replaces the wishlist wholesale. Used by hydration.
type ReplaceWishlist struct {
	Products []catalog.Product
}

func (SetLoading) isAction()         {}
func (SetError) isAction()           {}
func (SetCatalog) isAction()         {}
func (Login) isAction()              {}
func (Logout) isAction()             {}
func (AddToCart) isAction()          {}
func (RemoveFromCart) isAction()     {}
func (SetCartQuantity) isAction()    {}
func (ClearCart) isAction()          {}
func (ReplaceCart) isAction()        {}
func (AddToWishlist) isAction()      {}
func (RemoveFromWishlist) isAction() {}
func (ReplaceWishlist) isAction()    {}
