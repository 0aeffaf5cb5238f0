package common

import (
	"fmt"
	"strings"
)

// MultiError holds several independent failures. errors.Is and errors.As
// look through every one of them.
type MultiError struct {
	Errs []error
}

func (m *MultiError) Error() string {
	parts := make([]string, len(m.Errs))
	for i, err := range m.Errs {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred: [%s]", len(m.Errs), strings.Join(parts, "; "))
}

func (m *MultiError) Unwrap() []error { return m.Errs }

// CombineErrors drops nils and returns nil, the single remaining error, or a *MultiError.
func CombineErrors(errs []error) error {
	var kept []error
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return &MultiError{Errs: kept}
	}
}

// ErrorCollector accumulates errors during a multi-step operation.
// It is not safe for concurrent use.
type ErrorCollector struct {
	errs []error
}

func (ec *ErrorCollector) Add(err error) {
	if err != nil {
		ec.errs = append(ec.errs, err)
	}
}

// AddWithContext adds err prefixed with context.
func (ec *ErrorCollector) AddWithContext(err error, context string) {
	if err != nil {
		ec.errs = append(ec.errs, WrapError(err, context))
	}
}

func (ec *ErrorCollector) HasErrors() bool { return len(ec.errs) > 0 }

func (ec *ErrorCollector) Len() int { return len(ec.errs) }

// Errors returns a copy of the collected errors.
func (ec *ErrorCollector) Errors() []error {
	return append([]error(nil), ec.errs...)
}

// Error combines everything collected, nil when empty.
func (ec *ErrorCollector) Error() error {
	return CombineErrors(ec.errs)
}
