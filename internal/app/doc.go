// Package app wires Blush together: configuration, catalog client, device
// storage, the state store, the persistence synchronizer, and the UI.
package app
