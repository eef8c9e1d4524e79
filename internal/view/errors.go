package view

import "errors"

var (
	ErrInvalidSection = errors.New("invalid section selector")
	ErrInvalidSortKey = errors.New("invalid sort key")
)
