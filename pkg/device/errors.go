package device

import "errors"

var (
	ErrUnknownType         = errors.New("device.unknown_type")
	ErrUnknownCode         = errors.New("device.unknown_code")
	ErrInvalidCode         = errors.New("device.invalid_code")
	ErrReadKeywordsFile    = errors.New("device.read_keywords_file")
	ErrInvalidKeywordsFile = errors.New("device.invalid_keywords_file")
)
