package jsonopt

import "errors"

// ErrUndefined is returned by Get (and panicked by MustGet) when a value
// accessor runs against a key that was absent from the payload. Decode errors
// from the JSON/YAML frameworks are not translated; they propagate verbatim.
var ErrUndefined = errors.New("jsonopt: no value present")
