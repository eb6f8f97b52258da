// Package records manages student records: validated add, lookup by roll
// number, search by last name, delete, and CSV export. Records live in a
// Store owned by the caller; both an in-memory and a Postgres-backed
// implementation are provided.
package records

import (
	"errors"
	"fmt"
	"strings"
)

// Student is a single student record.
type Student struct {
	FirstName string
	LastName  string
	Roll      string
}

var (
	ErrNotFound      = errors.New("student not found")
	ErrDuplicateRoll = errors.New("duplicate roll number")
	ErrInvalidRoll   = errors.New("invalid roll number")
	ErrInvalidName   = errors.New("invalid name")
)

// Store holds a collection of student records. List returns records in
// insertion order.
type Store interface {
	Add(s Student) error
	List() ([]Student, error)
	FindByRoll(roll string) (Student, error)
	SearchByLastName(name string) ([]Student, error)
	Delete(roll string) error
}

// ValidRoll reports whether roll has the form "AM" followed by five digits.
func ValidRoll(roll string) bool {
	if len(roll) != 7 || roll[0] != 'A' || roll[1] != 'M' {
		return false
	}
	for i := 2; i < 7; i++ {
		if roll[i] < '0' || roll[i] > '9' {
			return false
		}
	}
	return true
}

func validate(s Student) error {
	if !ValidRoll(s.Roll) {
		return fmt.Errorf("%w: %q must be AM followed by five digits", ErrInvalidRoll, s.Roll)
	}
	if strings.TrimSpace(s.FirstName) == "" || strings.TrimSpace(s.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidName)
	}
	return nil
}
