package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned when generation is attempted without an API
// credential. It is checked before any network attempt is made.
var ErrNotConfigured = errors.New("LLM client is not configured with an API key")

// ProviderError reports a transport or provider-side fault (timeout, rate
// limit, malformed response). It is recoverable: the caller surfaces a
// notice and may retry by explicit user action.
type ProviderError struct {
	Section string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error generating %s: %v", e.Section, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ValidationError reports a response that could not be parsed into the
// target schema: bad JSON, unknown fields, out-of-vocabulary keys, or
// missing required fields. Validation is all-or-nothing per call.
type ValidationError struct {
	Section string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid structured response for %s: %v", e.Section, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// PreconditionError reports an attempt to run a pipeline stage whose
// upstream inputs are missing or empty. It is raised before any LLM call.
type PreconditionError struct {
	Section string
	Missing []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot generate %s: missing %s", e.Section, strings.Join(e.Missing, ", "))
}
