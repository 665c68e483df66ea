package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

// Validation errors.
var (
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction checks the fields persistence depends on.
func validateTransaction(txn *model.Transaction) error {
	if txn.StatementID == "" {
		return fmt.Errorf("%w: missing statement id", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	return nil
}
