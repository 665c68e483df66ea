// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Parser errors.
	ErrUnsupportedDocument = errors.New("unsupported document format")
)
