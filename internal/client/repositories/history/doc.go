// Package history persists a local journal of dispatched encrypt and
// decrypt batches in SQLite.
//
// One row in operations is written per dispatched submission, and one row in
// operation_files per submitted file, inside a single transaction. Neither the
// password nor any file content is ever stored.
package history
