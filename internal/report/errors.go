package report

import "errors"

var (
	ErrInvalidRange = errors.New("report range must end on or after it starts")
)
