// Package cli implements the gkeyring command line.
//
// One invocation parses its flags into a models.Request and performs exactly
// one of three operations against a keyring.Store:
//   - query (default): print matching items, one tab-separated row each
//   - create (--set): store a new item and print its id
//   - delete (--delete): remove the item given by --id
//
// Exit codes: 0 success, 1 interrupted, 2 usage error or store unavailable,
// 5 no match or failed create/delete.
//
// The store and the password prompt are injected into NewApp, so tests run
// against keyring.MemoryStore and a canned Terminal. App.Run(ctx, args) returns
// as soon as ctx is cancelled, which is how interrupts are delivered.
package cli
