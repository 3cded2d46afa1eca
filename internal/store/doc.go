// Package store holds the shared application state for Blush and defines the
// only way to change it.
//
// # Overview
//
// All mutable state in the application (session, catalog, cart, wishlist,
// loading flag, last error) lives in a single State value owned by a Store.
// The UI reads snapshots and dispatches actions; the persistence layer
// subscribes to transitions and mirrors the durable slices to disk. Nothing
// else touches the state.
//
//	View layer ──dispatch(Action)──→ Store ──(prev, next)──→ Subscribers
//	     ↑                             │
//	     └────────── State() ──────────┘
//
// # Reducer
//
// Reduce is a pure function (State, Action) → State. The same inputs always
// produce the same output; it performs no I/O and reads no clock. The action
// set is a closed sum type, so "unknown action" handling reduces to the
// default case of a type switch: the state is returned unchanged.
//
// Transition rules worth calling out:
//
//   - The cart is grouped: one CartLine per product id with a quantity ≥ 1.
//     AddToCart grows the quantity; SetCartQuantity with zero removes the
//     line; RemoveFromCart removes the line regardless of quantity.
//   - AddToWishlist is idempotent. Dispatching it twice leaves one entry.
//   - Logout clears session, cart, and wishlist but leaves the catalog alone,
//     so a following login doesn't need a refetch.
//   - SetError clears the loading flag; SetLoading does not clear the error.
//
// # Concurrency
//
// The Store serializes Dispatch calls with a mutex, so each transition is
// atomic: no reader can observe a half-applied action. Snapshots returned by
// State are deep copies; mutating one never leaks back into the Store.
//
// Subscribers are notified synchronously on the dispatching goroutine while
// the transition lock is held. That gives them the strongest useful ordering
// guarantee (notifications arrive in dispatch order, with no interleaving)
// at the cost of one rule: a listener must not call back into the Store.
//
// # Testing
//
// Reduce can be tested without a Store. The zero State is the valid initial
// state: empty catalog, empty cart, empty wishlist, logged out.
package store
