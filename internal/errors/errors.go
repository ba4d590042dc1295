package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidProductNo = errors.New("product id is not a valid product number")
	ErrEmptyCatalog     = errors.New("catalog is empty")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrUnknownProduct   = errors.New("product is not in the catalog")
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Is makes a 404 match ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

func IsStatus(err error, code int) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
