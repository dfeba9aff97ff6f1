// Package fixtures builds validated patients for package tests.
package fixtures

import (
	"testing"

	"casetrack/pkg/domain"
)

// PatientSpec is the raw form of a patient used by test fixtures.
type PatientSpec struct {
	Name, Phone, Email, Address, Income, MedicalInfo string
	Tags, Notes                                      []string
}

// BuildPatient validates spec and fails the test on any error.
func BuildPatient(t testing.TB, spec PatientSpec) domain.Patient {
	t.Helper()
	var d domain.Details
	var err error
	must := func(field string, e error) {
		if e != nil {
			t.Fatalf("fixture %s %s: %v", spec.Name, field, e)
		}
	}
	d.Name, err = domain.NewName(spec.Name)
	must("name", err)
	d.Phone, err = domain.NewPhone(spec.Phone)
	must("phone", err)
	d.Email, err = domain.NewEmail(spec.Email)
	must("email", err)
	d.Address, err = domain.NewAddress(spec.Address)
	must("address", err)
	if spec.Income != "" {
		d.Income, err = domain.NewIncome(spec.Income)
		must("income", err)
	}
	if spec.MedicalInfo != "" {
		d.MedicalInfo, err = domain.NewMedicalInfo(spec.MedicalInfo)
		must("medical info", err)
	}
	d.Tags, err = domain.NewTags(spec.Tags...)
	must("tags", err)
	for _, raw := range spec.Notes {
		n, err := domain.NewNote(raw)
		must("note", err)
		d.Notes = append(d.Notes, n)
	}
	p, err := domain.NewPatient(d)
	must("patient", err)
	return p
}

// Alice, Benson and Carl are the typical patients used across package tests.
var (
	Alice = PatientSpec{
		Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com",
		Address: "123, Jurong West Ave 6, #08-111", Income: "3000", MedicalInfo: "Asthma",
		Tags: []string{"friends"}, Notes: []string{"First visit"},
	}
	Benson = PatientSpec{
		Name: "Benson Meier", Phone: "98765432", Email: "johnd@example.com",
		Address: "311, Clementi Ave 2, #02-25", Income: "4500.50",
		Tags: []string{"owesMoney", "friends"},
	}
	Carl = PatientSpec{
		Name: "Carl Kurz", Phone: "95352563", Email: "heinz@example.com",
		Address: "wall street",
	}
)

// TypicalPatients returns Alice, Benson and Carl in that order.
func TypicalPatients(t testing.TB) []domain.Patient {
	t.Helper()
	return []domain.Patient{BuildPatient(t, Alice), BuildPatient(t, Benson), BuildPatient(t, Carl)}
}
