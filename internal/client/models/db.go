package models

import "time"

// Outcome of a dispatched batch operation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// OperationRecord is a history entry persisted locally after every
// dispatched submission. It never holds the password or file content.
type OperationRecord struct {
	// ID is the request identifier sent to the service as X-Request-ID.
	ID string

	Kind    OperationKind
	Outcome Outcome

	// Message is the status text shown to the user when the operation finished.
	Message string

	StartedAt  time.Time
	FinishedAt time.Time

	Files []RecordFile
}

// RecordFile is one submitted file of an OperationRecord.
type RecordFile struct {
	Position      int
	Name          string
	Size          int64
	ProcessedName string
}

// Duration is the wall-clock time the operation took.
func (r *OperationRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
