package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	ErrValidation          = errors.New("validation failed")
	ErrMissingField        = errors.New("missing field")
	ErrDuplicatePatient    = errors.New("duplicate patient")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrNoteIndexOutOfRange = errors.New("note index out of range")
)

// ValidationError is returned when a raw value does not satisfy the field constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// MissingFieldError is returned when a required field is absent from a stored record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Patient's %s field is missing!", e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// DuplicatePatientError reports that two patients share an identity. Indexes are
// -1 when the collision was detected against a single incoming patient.
type DuplicatePatientError struct {
	Name        Name
	FirstIndex  int
	SecondIndex int
}

func (e *DuplicatePatientError) Error() string {
	if e.FirstIndex < 0 || e.SecondIndex < 0 {
		return fmt.Sprintf("Operation would result in duplicate patients: %s", e.Name)
	}
	return fmt.Sprintf("Patients list contains duplicate patient(s): %s at %d and %d",
		e.Name, e.FirstIndex, e.SecondIndex)
}

// Is reports whether target is ErrDuplicatePatient.
func (e *DuplicatePatientError) Is(target error) bool { return target == ErrDuplicatePatient }

// NoteIndexError is returned when a note index does not address an existing note.
type NoteIndexError struct {
	Index int
	Count int
}

func (e *NoteIndexError) Error() string {
	return fmt.Sprintf("note index %d is out of range (patient has %d notes)", e.Index, e.Count)
}

// Is reports whether target is ErrNoteIndexOutOfRange.
func (e *NoteIndexError) Is(target error) bool { return target == ErrNoteIndexOutOfRange }
