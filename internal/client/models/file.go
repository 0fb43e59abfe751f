// Package models defines client-side data models used by the SnapCryptor CLI.
package models

import (
	"bytes"
	"io"
	"os"
)

// DefaultContentType is sent for parts whose MIME type is unknown.
const DefaultContentType = "application/octet-stream"

// ContentSource is a reference to the binary content of a selected file.
// Every Open call returns a fresh reader positioned at the start.
type ContentSource interface {
	Open() (io.ReadCloser, error)
}

// FileHandle is a user-selected local file that has not been transmitted yet.
// Name is the identity used for de-duplication; Size and Source are not compared.
type FileHandle struct {
	Name        string
	Size        int64
	ContentType string
	Source      ContentSource
}

// Open returns a reader over the file content.
func (f FileHandle) Open() (io.ReadCloser, error) {
	if f.Source == nil {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	return f.Source.Open()
}

// BytesSource serves content from memory.
type BytesSource []byte

func (b BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

// PathSource re-opens a file on disk each time content is requested.
type PathSource string

func (p PathSource) Open() (io.ReadCloser, error) {
	return os.Open(string(p))
}
