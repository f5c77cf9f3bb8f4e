package repository

import "errors"

var (
	// ErrProjectNotFound is returned when no registry row carries the spreadsheet id
	ErrProjectNotFound = errors.New("project not found")
)
