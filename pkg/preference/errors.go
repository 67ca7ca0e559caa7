package preference

import "errors"

var (
	ErrUnsupportedHost = errors.New("preference.unsupported_host")
	ErrInvalidURL      = errors.New("preference.invalid_url")
	ErrNoAccessor      = errors.New("preference.no_accessor")
)
