package chart

import "errors"

var (
	ErrInvalidWidth = errors.New("container width must be positive")
	ErrInvalidView  = errors.New("view range must end after it starts")
)
