package plate

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-microplate/monitoring"
)

// ItemError describes the failure of one item in a batch call.
type ItemError struct {
	// Position is the zero-based position of the item in the batch.
	Position int

	// Key identifies the item: a well label, group label or plate label.
	Key string

	// Err is the underlying sentinel-wrapping error.
	Err error
}

// Error renders "item 2 (B7): plate: duplicate entry".
func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d (%s): %v", e.Position, e.Key, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is / errors.As.
func (e *ItemError) Unwrap() error { return e.Err }

// Outcome is the aggregate result of a fail-soft batch operation.
//
// Every item of a batch is attempted regardless of earlier failures, and the
// effects of the successful items remain visible. Outcome records which
// items failed and why. A single-item call produces an Outcome too:
//
//	if err := ws.Add(w).Err(); err != nil { ... }
type Outcome struct {
	attempted int
	failures  []*ItemError
}

// OK reports whether every attempted item succeeded.
func (o Outcome) OK() bool { return len(o.failures) == 0 }

// Attempted returns the number of items the batch tried to apply.
func (o Outcome) Attempted() int { return o.attempted }

// Succeeded returns the number of items that were applied.
func (o Outcome) Succeeded() int { return o.attempted - len(o.failures) }

// Failures returns a copy of the per-item errors in batch order.
func (o Outcome) Failures() []*ItemError {
	out := make([]*ItemError, len(o.failures))
	copy(out, o.failures)
	return out
}

// Err joins all item errors, or returns nil when the batch succeeded.
func (o Outcome) Err() error {
	if len(o.failures) == 0 {
		return nil
	}
	errs := make([]error, len(o.failures))
	for i, f := range o.failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// String summarises the outcome, e.g. "3/4 succeeded".
func (o Outcome) String() string {
	return fmt.Sprintf("%d/%d succeeded", o.Succeeded(), o.attempted)
}

func (o *Outcome) pass() { o.attempted++ }

func (o *Outcome) fail(key string, err error) {
	o.failures = append(o.failures, &ItemError{Position: o.attempted, Key: key, Err: err})
	o.attempted++
}

// merge appends other's items, renumbering their positions.
func (o *Outcome) merge(other Outcome) {
	for _, f := range other.failures {
		o.failures = append(o.failures, &ItemError{Position: o.attempted + f.Position, Key: f.Key, Err: f.Err})
	}
	o.attempted += other.attempted
}

// report logs the failures of a batch under op through monitoring.Logf.
func (o Outcome) report(op string) Outcome {
	for _, f := range o.failures {
		monitoring.Logf("plate: %s: %v", op, f)
	}
	return o
}
