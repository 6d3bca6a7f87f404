// internal/errors/errors.go
package appErrors

import "fmt"

// ErrContactNotFound is a sentinel error
type ErrContactNotFound struct {
    ContactID int
}

func (e *ErrContactNotFound) Error() string {
    return fmt.Sprintf("contact with ID %d not found", e.ContactID)
}

// Helper constructor
func NewContactNotFound(id int) error {
    return &ErrContactNotFound{ContactID: id}
}

// ErrInvalidWorkbook marks an upload that is not a readable spreadsheet.
// It surfaces to the caller before any row processing starts.
type ErrInvalidWorkbook struct {
    Reason string
}

func (e *ErrInvalidWorkbook) Error() string {
    return fmt.Sprintf("invalid workbook: %s", e.Reason)
}

func NewInvalidWorkbook(reason string) error {
    return &ErrInvalidWorkbook{Reason: reason}
}
