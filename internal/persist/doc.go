// Package persist keeps device storage in sync with the application state.
//
// The contract has two halves. Hydration runs once at startup: the session,
// cart, and wishlist keys are read independently and every value found is
// dispatched into the store; anything unreadable is treated as absent.
// Write-back starts only after hydration, by subscribing to store
// transitions, which makes "never write defaults over unloaded data" hold by
// construction rather than by flag-checking.
//
// Each persisted key has exactly one writer goroutine, so writes to a key
// apply in the order their state changes occurred. The writer's mailbox keeps
// only the newest pending value: persisted state is a cache of the latest
// snapshot, not a log, so intermediate values are free to coalesce away.
//
// Failure policy follows the user's stake in the operation. Routine autosave
// failures are logged and swallowed; in-memory state stays authoritative.
// ClearAll, the destructive wipe behind "delete my data", propagates its
// failure and withholds the in-memory logout so the caller can tell the user
// the wipe did not happen.
package persist
