// Package ui implements the terminal storefront using Bubble Tea.
//
// The package follows the Elm architecture: a single Model holds all screen
// state, Update folds messages into it, and View renders the active screen.
// Domain state (session, catalog, cart, wishlist) lives in the store package;
// the Model keeps a snapshot that is refreshed after every dispatch, so
// rendering never touches the store directly.
//
// Screens are one file each (home, detail, cart, wishlist, offers, profile,
// onboarding, auth), with shared chrome in header.go and keys.go. Catalog
// requests run as tea.Cmd values so the UI never blocks on the network.
package ui
