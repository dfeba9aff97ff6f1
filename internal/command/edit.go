package command

import (
	"fmt"

	"casetrack/internal/core"
	"casetrack/pkg/domain"
)

// Descriptor lists the fields an Edit replaces. Nil fields keep their current
// value. A non-nil Tags replaces the whole tag set; an empty slice clears it.
type Descriptor struct {
	Name        *domain.Name
	Phone       *domain.Phone
	Email       *domain.Email
	Address     *domain.Address
	Income      *domain.Income
	MedicalInfo *domain.MedicalInfo
	Tags        *[]domain.Tag
}

// IsAnyFieldEdited reports whether d changes at least one field.
func (d Descriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil ||
		d.Income != nil || d.MedicalInfo != nil || d.Tags != nil
}

// Apply returns p with the described fields replaced. Notes are carried over.
func (d Descriptor) Apply(p core.Patient) (core.Patient, error) {
	details := p.Details()
	if d.Name != nil {
		details.Name = *d.Name
	}
	if d.Phone != nil {
		details.Phone = *d.Phone
	}
	if d.Email != nil {
		details.Email = *d.Email
	}
	if d.Address != nil {
		details.Address = *d.Address
	}
	if d.Income != nil {
		details.Income = *d.Income
	}
	if d.MedicalInfo != nil {
		details.MedicalInfo = *d.MedicalInfo
	}
	if d.Tags != nil {
		details.Tags = append([]domain.Tag(nil), (*d.Tags)...)
	}
	return domain.NewPatient(details)
}

// Edit replaces fields of the patient at Index in the filtered list.
type Edit struct {
	Index      Index
	Descriptor Descriptor
}

// Execute applies the descriptor and shows every patient again.
func (c Edit) Execute(m *core.Manager) (Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, fail(MessageNotEdited, nil)
	}
	target, err := patientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited, err := c.Descriptor.Apply(target)
	if err != nil {
		return Result{}, err
	}
	if err := m.SetPatient(target, edited); err != nil {
		return Result{}, translate(err)
	}
	m.UpdateFilteredPatients(nil)
	return Result{
		Feedback: fmt.Sprintf(MessageEditSuccess, edited),
		Patient:  edited,
		Mutated:  true,
	}, nil
}
