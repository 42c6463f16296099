// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import "errors"

// FatalError is an input or IO failure that ends the run. Message is the
// operator-facing text; Hint, when set, is shown highlighted after it.
type FatalError struct {
	Message string
	Hint    string
	Err     error
}

func (e *FatalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// AsFatal returns the FatalError in err's chain, if any.
func AsFatal(err error) (*FatalError, bool) {
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
