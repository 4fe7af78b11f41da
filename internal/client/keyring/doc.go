// Package keyring talks to the desktop secret store.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see Store) covering the handful of calls
//     the command line needs: availability probe, default keyring lookup,
//     attribute search, per-item info and attributes, create and delete.
//  2. A D-Bus implementation (see SecretService) of the freedesktop.org Secret
//     Service API as served by GNOME Keyring. Keyrings map to collections,
//     item ids to the last element of an item object path and item types to
//     the "xdg:schema" attribute.
//  3. An in-memory implementation (see MemoryStore) for tests.
//
// # Error Handling
//
// Conditions callers branch on are sentinel errors matched with errors.Is:
// ErrUnavailable, ErrNotFound, ErrDismissed, ErrNoDefaultKeyring.
//
// All calls block until the store answers, which may include waiting for the
// user to confirm an unlock prompt. They honor context cancellation.
package keyring
