// Package apperr restores sentinel errors after a service call.
// Request-reply services transport errors as text, so errors.Is on the
// caller side needs the sentinel reattached.
package apperr

import "strings"

// Restore returns err tagged with the first sentinel whose message it
// contains. Unknown errors and nil are returned unchanged.
func Restore(err error, sentinels ...error) error {
	if err == nil {
		return nil
	}
	for _, s := range sentinels {
		if strings.Contains(err.Error(), s.Error()) {
			return &restored{sentinel: s, err: err}
		}
	}
	return err
}

type restored struct {
	sentinel error
	err      error
}

func (e *restored) Error() string { return e.err.Error() }

func (e *restored) Is(target error) bool { return target == e.sentinel }

func (e *restored) Unwrap() error { return e.err }
