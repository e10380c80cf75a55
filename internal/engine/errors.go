package engine

import "fmt"

// SaveError means a mutation was applied in memory but could not be
// written. The change is lost if the process exits before a later save
// succeeds.
type SaveError struct {
	Op  string
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("%s: change not saved: %v", e.Op, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
