package app

import "fmt"

// RequestKind names a schedule mutation the timeline emits to the record store.
type RequestKind string

const (
	RequestProgress     RequestKind = "update_progress"
	RequestCriticalPath RequestKind = "recompute_critical_path"
	RequestBaseline     RequestKind = "create_baseline"
)

// RequestError reports a failed mutation request. The caller refreshes its
// records and decides whether to retry; nothing is rolled back locally.
type RequestError struct {
	Kind     RequestKind
	TargetID string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.TargetID, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
