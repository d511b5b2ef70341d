package health

import "errors"

var (
	ErrIndexIsDirectory    = errors.New("index document is a directory")
	ErrHTTPStatusCodeNotOK = errors.New("status code is not OK")
)
