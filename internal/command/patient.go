package command

import (
	"fmt"

	"casetrack/internal/core"
)

// Add inserts a new patient.
type Add struct {
	Patient core.Patient
}

// Execute adds the patient, failing when one with the same name exists.
func (c Add) Execute(m *core.Manager) (Result, error) {
	if err := m.AddPatient(c.Patient); err != nil {
		return Result{}, translate(err)
	}
	return Result{
		Feedback: fmt.Sprintf(MessageAddSuccess, c.Patient),
		Patient:  c.Patient,
		Mutated:  true,
	}, nil
}

// Delete removes the patient at Index in the filtered list.
type Delete struct {
	Index Index
}

// Execute removes the patient and reports it.
func (c Delete) Execute(m *core.Manager) (Result, error) {
	target, err := patientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePatient(target); err != nil {
		return Result{}, translate(err)
	}
	return Result{
		Feedback: fmt.Sprintf(MessageDeleteSuccess, target),
		Patient:  target,
		Mutated:  true,
	}, nil
}

// Clear removes every patient.
type Clear struct{}

// Execute replaces the book with an empty one.
func (Clear) Execute(m *core.Manager) (Result, error) {
	if err := m.SetAddressBook(core.NewAddressBook()); err != nil {
		return Result{}, err
	}
	return Result{Feedback: MessageClearSuccess, Mutated: true}, nil
}
