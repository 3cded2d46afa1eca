package store

import (
	"sync"

	"github.com/rosedew/blush/internal/catalog"
)

// Session is the authenticated-user record. Its presence on State means
// "logged in"; nil means anonymous.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CartLine is one product in the cart together with its quantity.
// Quantity is always at least 1; a line that would drop to zero is removed.
type CartLine struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// State is the aggregate application state. It is a value: the reducer and
// the Store hand out independent copies, never shared slices.
type State struct {
	Session  *Session
	Catalog  []catalog.Product
	Cart     []CartLine
	Wishlist []catalog.Product
	Loading  bool
	Err      string
}

// LoggedIn reports whether an authenticated session is present.
func (s State) LoggedIn() bool {
	return s.Session != nil
}

// CartQuantity returns the quantity of the given product in the cart, or zero.
func (s State) CartQuantity(productID int) int {
	for _, line := range s.Cart {
		if line.Product.ID == productID {
			return line.Quantity
		}
	}
	return 0
}

// CartUnits returns the total number of units across all cart lines.
func (s State) CartUnits() int {
	total := 0
	for _, line := range s.Cart {
		total += line.Quantity
	}
	return total
}

// CartTotal returns the cart's total price using discounted prices.
func (s State) CartTotal() float64 {
	total := 0.0
	for _, line := range s.Cart {
		total += line.Product.DiscountedPrice() * float64(line.Quantity)
	}
	return total
}

// InWishlist reports whether the given product is wishlisted.
func (s State) InWishlist(productID int) bool {
	for _, p := range s.Wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Reduce applies one action to a state and returns the resulting state. It is
// a total pure function: no I/O, no clock, and an action value outside the
// known set returns the state unchanged. Input slices are never mutated.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetLoading:
		s.Loading = a.Loading

	case SetError:
		s.Err = a.Message
		s.Loading = false

	case SetCatalog:
		s.Catalog = cloneProducts(a.Products)
		s.Loading = false

	case Login:
		session := a.Session
		s.Session = &session

	case Logout:
		s.Session = nil
		s.Cart = nil
		s.Wishlist = nil

	case AddToCart:
		s.Cart = addToCart(s.Cart, a.Product)

	case RemoveFromCart:
		s.Cart = removeLine(s.Cart, a.ProductID)

	case SetCartQuantity:
		s.Cart = setQuantity(s.Cart, a.ProductID, a.Quantity)

	case ClearCart:
		s.Cart = nil

	case ReplaceCart:
		s.Cart = cloneCart(a.Lines)

	case AddToWishlist:
		if !s.InWishlist(a.Product.ID) {
			s.Wishlist = append(cloneProducts(s.Wishlist), a.Product)
		}

	case RemoveFromWishlist:
		s.Wishlist = removeProduct(s.Wishlist, a.ProductID)

	case ReplaceWishlist:
		s.Wishlist = cloneProducts(a.Products)
	}
	return s
}

func addToCart(cart []CartLine, p catalog.Product) []CartLine {
	next := cloneCart(cart)
	for i := range next {
		if next[i].Product.ID == p.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, CartLine{Product: p, Quantity: 1})
}

func removeLine(cart []CartLine, productID int) []CartLine {
	var next []CartLine
	for _, line := range cart {
		if line.Product.ID != productID {
			next = append(next, line)
		}
	}
	return next
}

func setQuantity(cart []CartLine, productID, quantity int) []CartLine {
	if quantity <= 0 {
		return removeLine(cart, productID)
	}
	next := cloneCart(cart)
	for i := range next {
		if next[i].Product.ID == productID {
			next[i].Quantity = quantity
		}
	}
	return next
}

func removeProduct(products []catalog.Product, productID int) []catalog.Product {
	var next []catalog.Product
	for _, p := range products {
		if p.ID != productID {
			next = append(next, p)
		}
	}
	return next
}

func cloneProducts(products []catalog.Product) []catalog.Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]catalog.Product, len(products))
	copy(dup, products)
	return dup
}

func cloneCart(cart []CartLine) []CartLine {
	if len(cart) == 0 {
		return nil
	}
	dup := make([]CartLine, len(cart))
	copy(dup, cart)
	return dup
}

func cloneState(s State) State {
	if s.Session != nil {
		session := *s.Session
		s.Session = &session
	}
	s.Catalog = cloneProducts(s.Catalog)
	s.Cart = cloneCart(s.Cart)
	s.Wishlist = cloneProducts(s.Wishlist)
	return s
}

// Listener observes completed transitions. Listeners run synchronously on the
// dispatching goroutine, in dispatch order, and must not call back into the
// Store.
type Listener func(prev, next State)

// Store owns the application state. All mutation goes through Dispatch; reads
// go through State, which returns an independent snapshot.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// New returns a Store holding the empty initial state.
func New() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// Dispatch applies one action atomically and notifies subscribers with the
// before and after snapshots.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	next := Reduce(prev, a)
	s.state = next

	for _, l := range s.listeners {
		l(cloneState(prev), cloneState(next))
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Subscribe registers a transition listener and returns a cancel function.
func (s *Store) Subscribe(l Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
