package pipeline

import "errors"

// ErrInvalidFormat is returned by ParseFormat for an unrecognized
// output format token (spec section 7).
var ErrInvalidFormat = errors.New("invalid output format")
