// Package cli provides the interactive SnapCryptor command-line client.
//
// It wires configuration, the remote service client, the download strategy,
// the local operation history and the operation controller, then either runs
// a single encrypt/decrypt batch (one-shot mode) or an interactive REPL.
//
// REPL commands:
//   - add PATH... / remove NAME / list   manage the file selection
//   - password                           set the password (no echo on a terminal)
//   - encrypt / decrypt                  submit the selection
//   - status / history [N|clear] / ping
//   - exit | quit
//
// A background watcher pings the service and keeps the prompt's
// online/offline label current. See App.Root and runREPL.
package cli
