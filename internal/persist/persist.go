package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/rosedew/blush/internal/catalog"
	"github.com/rosedew/blush/internal/storage"
	"github.com/rosedew/blush/internal/store"
)

// Synchronizer mirrors the durable slices of application state (session,
// cart, wishlist) to device storage. Hydrate loads persisted values into the
// store exactly once and only then subscribes for write-back, so defaults are
// never written over not-yet-loaded data.
type Synchronizer struct {
	store *store.Store
	kv    storage.KV
	logf  func(format string, args ...any)

	writers     map[string]*writer
	unsubscribe func()
	wg          sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New builds a Synchronizer. It does nothing until Hydrate is called.
func New(st *store.Store, kv storage.KV) *Synchronizer {
	return &Synchronizer{
		store: st,
		kv:    kv,
		logf:  log.Printf,
	}
}

// Hydrate performs the one-time startup load: session, cart, and wishlist are
// read independently and each present value is dispatched into the store. A
// failed or malformed read is logged and treated as absent; hydration itself
// never fails. After loading, the write-back workers start and the
// synchronizer subscribes to store transitions.
func (s *Synchronizer) Hydrate(ctx context.Context) {
	if value, ok := s.get(ctx, storage.KeyUser); ok {
		var session store.Session
		if err := json.Unmarshal(value, &session); err != nil {
			s.logf("persist: decode %s: %v", storage.KeyUser, err)
		} else {
			s.store.Dispatch(store.Login{Session: session})
		}
	}

	if value, ok := s.get(ctx, storage.KeyCart); ok {
		var lines []store.CartLine
		if err := json.Unmarshal(value, &lines); err != nil {
			s.logf("persist: decode %s: %v", storage.KeyCart, err)
		} else {
			s.store.Dispatch(store.ReplaceCart{Lines: lines})
		}
	}

	if value, ok := s.get(ctx, storage.KeyWishlist); ok {
		var products []catalog.Product
		if err := json.Unmarshal(value, &products); err != nil {
			s.logf("persist: decode %s: %v", storage.KeyWishlist, err)
		} else {
			s.store.Dispatch(store.ReplaceWishlist{Products: products})
		}
	}

	s.writers = map[string]*writer{
		storage.KeyUser:     s.startWriter(storage.KeyUser),
		storage.KeyCart:     s.startWriter(storage.KeyCart),
		storage.KeyWishlist: s.startWriter(storage.KeyWishlist),
	}
	s.unsubscribe = s.store.Subscribe(s.onTransition)
}

func (s *Synchronizer) get(ctx context.Context, key string) ([]byte, bool) {
	value, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logf("persist: read %s: %v", key, err)
		return nil, false
	}
	return value, ok
}

// onTransition inspects a completed state transition and schedules writes for
// the slices that changed. A transition to logged-out schedules deletion of
// every persisted key instead of writing the now-empty values.
func (s *Synchronizer) onTransition(prev, next store.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if prev.Session != nil && next.Session == nil {
		for _, w := range s.writers {
			w.enqueue(op{delete: true})
		}
		return
	}

	if !sessionEqual(prev.Session, next.Session) && next.Session != nil {
		s.enqueueJSON(storage.KeyUser, *next.Session)
	}
	if !cartEqual(prev.Cart, next.Cart) {
		s.enqueueJSON(storage.KeyCart, next.Cart)
	}
	if !productsEqual(prev.Wishlist, next.Wishlist) {
		s.enqueueJSON(storage.KeyWishlist, next.Wishlist)
	}
}

func (s *Synchronizer) enqueueJSON(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logf("persist: encode %s: %v", key, err)
		return
	}
	s.writers[key].enqueue(op{value: data})
}

// ClearAll removes every persisted key and, on success, dispatches Logout.
// Unlike routine write-back, a failure here propagates to the caller: the
// logout flow needs to know the wipe did not complete.
func (s *Synchronizer) ClearAll(ctx context.Context) error {
	if err := s.kv.DeleteMany(ctx, storage.KeyUser, storage.KeyCart, storage.KeyWishlist); err != nil {
		return fmt.Errorf("clear persisted data: %w", err)
	}
	s.store.Dispatch(store.Logout{})
	return nil
}

// Close stops observing the store and flushes any pending writes.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	for _, w := range s.writers {
		close(w.ch)
	}
	s.wg.Wait()
}

// op is one unit of work for a key's writer: either a value to store or a
// deletion of the key.
type op struct {
	value  []byte
	delete bool
}

// writer owns all storage traffic for a single key. Its mailbox holds only
// the latest pending op: write-back is a cache of the newest snapshot, so
// intermediate values may be coalesced away, but ops for the same key always
// apply in the order their state changes occurred.
type writer struct {
	key  string
	ch   chan op
	kv   storage.KV
	logf func(format string, args ...any)
}

func (s *Synchronizer) startWriter(key string) *writer {
	w := &writer{
		key:  key,
		ch:   make(chan op, 1),
		kv:   s.kv,
		logf: s.logf,
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		w.run()
	}()
	return w
}

// enqueue replaces any stale pending op with the newest one without blocking
// the dispatching goroutine.
func (w *writer) enqueue(o op) {
	for {
		select {
		case w.ch <- o:
			return
		default:
		}
		select {
		case <-w.ch:
		default:
		}
	}
}

// run applies ops until the mailbox closes. Failures are logged and swallowed:
// in-memory state stays authoritative and the next successful write re-syncs.
// Writes use a background context so pending state still lands on disk during
// shutdown.
func (w *writer) run() {
	ctx := context.Background()
	for o := range w.ch {
		var err error
		if o.delete {
			err = w.kv.DeleteMany(ctx, w.key)
		} else {
			err = w.kv.Set(ctx, w.key, o.value)
		}
		if err != nil {
			w.logf("persist: write %s: %v", w.key, err)
		}
	}
}

func sessionEqual(a, b *store.Session) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cartEqual(a, b []store.CartLine) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Product.ID != b[i].Product.ID || a[i].Quantity != b[i].Quantity {
			return false
		}
	}
	return true
}

func productsEqual(a, b []catalog.Product) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
