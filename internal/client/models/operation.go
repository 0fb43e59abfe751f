package models

import (
	"fmt"

	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

// OperationKind selects the remote endpoint: the kind's name is appended to
// the service base URL.
type OperationKind string

const (
	OperationEncrypt OperationKind = "encrypt"
	OperationDecrypt OperationKind = "decrypt"
)

// Valid reports whether k names a service endpoint.
func (k OperationKind) Valid() bool {
	return k == OperationEncrypt || k == OperationDecrypt
}

// ParseOperationKind maps user input to a known kind.
func ParseOperationKind(s string) (OperationKind, error) {
	if k := OperationKind(s); k.Valid() {
		return k, nil
	}
	return "", fmt.Errorf("%w %q", common.ErrUnknownOperation, s)
}

// Verb is used in in-progress messages ("Encrypting files...").
func (k OperationKind) Verb() string {
	if k == OperationDecrypt {
		return "Decrypting"
	}
	return "Encrypting"
}

// Noun is used in default success messages ("Encryption successful!").
func (k OperationKind) Noun() string {
	if k == OperationDecrypt {
		return "Decryption"
	}
	return "Encryption"
}

// OperationState is either Idle (zero value) or Submitting a given kind.
type OperationState struct {
	Kind       OperationKind
	Submitting bool
}

// Idle is the resting state of the controller.
var Idle = OperationState{}

// Submitting returns the in-flight state for kind.
func Submitting(kind OperationKind) OperationState {
	return OperationState{Kind: kind, Submitting: true}
}

func (s OperationState) String() string {
	if !s.Submitting {
		return "idle"
	}
	return fmt.Sprintf("submitting(%s)", s.Kind)
}

// StatusLevel tags a status message so the presentation can style it.
type StatusLevel string

const (
	StatusInfo     StatusLevel = "info"
	StatusProgress StatusLevel = "progress"
	StatusError    StatusLevel = "error"
)

// StatusMessage is the user-facing outcome of the last controller action.
// It persists until replaced.
type StatusMessage struct {
	Text  string
	Level StatusLevel
}

func InfoStatus(text string) StatusMessage     { return StatusMessage{Text: text, Level: StatusInfo} }
func ProgressStatus(text string) StatusMessage { return StatusMessage{Text: text, Level: StatusProgress} }
func ErrorStatus(text string) StatusMessage    { return StatusMessage{Text: text, Level: StatusError} }

// IsError reports whether the message should be rendered as an error.
func (m StatusMessage) IsError() bool {
	return m.Level == StatusError
}

func (m StatusMessage) String() string {
	return m.Text
}
