package command

import (
	"errors"

	"casetrack/internal/core"
	"casetrack/pkg/domain"
)

// Result is the outcome of a successful command.
type Result struct {
	// Feedback is shown to the user.
	Feedback string
	// Patient is the patient the command acted on, zero when none.
	Patient core.Patient
	// Mutated reports whether the book changed and should be saved.
	Mutated bool
}

// Command is one user operation.
type Command interface {
	Execute(m *core.Manager) (Result, error)
}

// patientAt returns the patient at idx in the filtered list.
func patientAt(m *core.Manager, idx Index) (core.Patient, error) {
	p, ok := m.FilteredPatient(idx.ZeroBased())
	if !ok {
		return core.Patient{}, fail(MessageInvalidPatientIndex, nil)
	}
	return p, nil
}

// translate maps collection errors to command errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicatePatient):
		return fail(MessageDuplicatePatient, err)
	case errors.Is(err, domain.ErrPatientNotFound):
		return fail(MessagePatientNotFound, err)
	case errors.Is(err, domain.ErrNoteIndexOutOfRange):
		return fail(MessageInvalidNoteIndex, err)
	default:
		return err
	}
}
