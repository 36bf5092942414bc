package reader

import "errors"

var errInvalidEncoding = errors.New("data is not valid for this encoding")
