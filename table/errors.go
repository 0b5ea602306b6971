package table

import (
	"errors"
)

var (
	ErrEmptyTable       = errors.New("empty table")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrNoSharedColumns  = errors.New("no shared columns to merge on")
	ErrDuplicateColumns = errors.New("duplicate column name")
)
