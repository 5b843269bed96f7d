package web

import "fmt"

// Error describes a failed probe or fetch. Status is 0 when no response was
// received.
type Error struct {
	Op     string
	URL    string
	Status int
	Cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("%s %s: status %d", e.Op, e.URL, e.Status)
	default:
		return fmt.Sprintf("%s %s: failed", e.Op, e.URL)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}
