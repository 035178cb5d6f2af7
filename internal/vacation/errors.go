package vacation

import "errors"

var (
	ErrSourceUnavailable = errors.New("vacation source unavailable")
)
