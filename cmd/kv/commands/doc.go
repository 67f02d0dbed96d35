// Package commands defines the kv CLI.
//
// Commands
//
//   - add <key> [value]  Store value under a new key; existing keys are kept
//   - upd <key> [value]  Replace the value of an existing key
//   - get [key]          Print a value and copy it to the clipboard
//   - rm [key]           Remove a key
//   - help, h            Print usage
//
// When the value (add, upd) or the key (get, rm) is omitted, it is read from
// the system clipboard.
//
// # Implementation
//
// Every storage command loads configuration, opens the store, applies one
// operation and closes the store, which persists the change. Configuration
// and storage are only touched once the command and its arguments are known
// to be valid, so help and unsupported commands never open the store.
package commands
