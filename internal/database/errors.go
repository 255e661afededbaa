package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStoreUnavailable is returned when the jobs table cannot be reached or a
// query fails for a reason other than the data itself.
var ErrStoreUnavailable = errors.New("job store unavailable")

// ValidationError reports a row the table refused: a missing required field
// or a value violating a column type or constraint.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// classify maps a driver error onto the store's error taxonomy. SQLSTATE
// classes 22 (data exception) and 23 (integrity constraint violation) are the
// table rejecting the row; everything else means the store failed.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "22", "23":
			return &ValidationError{
				Msg: fmt.Sprintf("%s: %s", op, pgErr.Message),
				Err: err,
			}
		}
	}
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}
