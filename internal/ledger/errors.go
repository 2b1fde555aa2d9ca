package ledger

import "fmt"

// ValidationError reports a rejected field on add or update.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation addressed by an id that does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.ID)
}

// OutOfRangeError reports a 1-based position outside [1, Length].
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [1, %d]", e.Index, e.Length)
}
