// Package client contains the transport layer of the SnapCryptor CLI.
//
// # Overview
//
// The package provides:
//  1. The Client interface: the contract of the remote encryption service
//     (Process, Ping, ResolveURL).
//  2. HTTPClient, which streams a batch as a multipart/form-data POST to
//     {base}/encrypt or {base}/decrypt and decodes the JSON answer.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     operation history, an SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Non-2xx answers become *StatusError carrying the service's message.
// Transport failures wrap ErrUnavailable and undecodable success bodies wrap
// ErrMalformedResponse; match them with errors.Is.
//
// No timeout is applied to a batch. Callers that need one must bring their
// own http.Client via WithHTTPClient.
package client
