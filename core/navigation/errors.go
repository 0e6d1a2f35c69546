package navigation

import "errors"

var (
	ErrTooManyRedirects = errors.New("navigation: too many redirects")
	ErrInvalidURL       = errors.New("navigation: invalid url")
)
