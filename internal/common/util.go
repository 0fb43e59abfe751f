package common

import (
	"fmt"
	"strings"
)

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used for passwords read from the terminal once they have been handed over.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// JoinURL appends ref to base with exactly one slash between them.
func JoinURL(base, ref string) string {
	if ref == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}

// FormatMB renders a byte count the way the file list shows sizes.
func FormatMB(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/1024/1024)
}
