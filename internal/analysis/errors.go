package analysis

import "fmt"

// InsufficientDataError reports that a contact (or the whole dataset, when
// ContactKey is empty) lacks the volume a metric needs. Rankings treat it as
// an exclusion, not a failure.
type InsufficientDataError struct {
	ContactKey string
	Metric     string
}

func (e *InsufficientDataError) Error() string {
	if e.ContactKey == "" {
		return fmt.Sprintf("insufficient data for %s", e.Metric)
	}
	return fmt.Sprintf("insufficient data for %s: contact %s", e.Metric, e.ContactKey)
}

// InvalidEventOrderError reports an event stream whose timestamps regress.
// Index is the position of the offending event within its contact's slice.
type InvalidEventOrderError struct {
	ContactKey string
	Index      int
}

func (e *InvalidEventOrderError) Error() string {
	return fmt.Sprintf("events out of order for contact %s at index %d", e.ContactKey, e.Index)
}
