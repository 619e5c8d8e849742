// Package store owns persistence for the three listing kinds. Every
// operation runs against a single shared database handle and converts
// driver failures into a PersistenceError at this boundary.
package store

import (
	"fmt"

	"github.com/nithinvarma/agrimarket-backend/internal/validation"
	"gorm.io/gorm"
)

// ValidationError reports input that failed a store-side check. It never
// reaches the database.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// PersistenceError wraps a database failure, e.g. a CHECK constraint
// violation surfaced by the driver.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store provides access to the listing tables.
type Store struct {
	db *gorm.DB
}

// New wraps an open database handle. The handle is shared for the life of
// the process; Store adds no locking beyond what SQLite provides.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func checkText(field, value string) error {
	if !validation.MinLength(value, validation.MinFieldLength) {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at least %d characters long", validation.MinFieldLength)}
	}
	return nil
}

func checkContact(value string) error {
	if !validation.IsPhoneNumber(value) {
		return &ValidationError{Field: "contact", Reason: "must be a valid 10-digit mobile number"}
	}
	return nil
}

func checkPositive(field string, value float64) error {
	if !validation.IsPositive(value) {
		return &ValidationError{Field: field, Reason: "must be greater than zero"}
	}
	return nil
}
