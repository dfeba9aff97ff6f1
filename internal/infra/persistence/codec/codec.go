// Package codec converts patients to and from the JSON document shared by every
// persistent store and the backup archive.
package codec

import (
	"encoding/json"
	"fmt"

	"casetrack/pkg/domain"
)

// Document is the serialized address book.
type Document struct {
	Patients []Record `json:"patients"`
}

// Record is the serialized form of a single patient. Pointer fields distinguish
// a missing value from an empty one.
type Record struct {
	Name        *string  `json:"name"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Address     *string  `json:"address"`
	Income      *string  `json:"income"`
	MedicalInfo *string  `json:"medicalInfo"`
	Tags        []string `json:"tags"`
	Notes       []string `json:"notes"`
}

// DuplicateMessage is reported when a document holds two patients with one identity.
const DuplicateMessage = "Patients list contains duplicate patient(s)."

// FromPatients builds a document from patients.
func FromPatients(patients []domain.Patient) Document {
	doc := Document{Patients: make([]Record, 0, len(patients))}
	for _, p := range patients {
		doc.Patients = append(doc.Patients, FromPatient(p))
	}
	return doc
}

// FromPatient builds the record for p. Absent optional fields encode as null.
func FromPatient(p domain.Patient) Record {
	rec := Record{
		Name:    strPtr(p.Name().String()),
		Phone:   strPtr(p.Phone().String()),
		Email:   strPtr(p.Email().String()),
		Address: strPtr(p.Address().String()),
		Tags:    make([]string, 0),
		Notes:   make([]string, 0),
	}
	if income, ok := p.Income(); ok {
		rec.Income = strPtr(income.String())
	}
	if med := p.MedicalInfo(); !med.IsZero() {
		rec.MedicalInfo = strPtr(med.String())
	}
	for _, t := range p.Tags() {
		rec.Tags = append(rec.Tags, t.String())
	}
	for _, n := range p.Notes() {
		rec.Notes = append(rec.Notes, n.String())
	}
	return rec
}

// ToPatients validates every record and returns the patients in order. Any
// invalid or missing field aborts the whole conversion, as does a duplicate
// identity.
func (d Document) ToPatients() ([]domain.Patient, error) {
	out := make([]domain.Patient, 0, len(d.Patients))
	for i, rec := range d.Patients {
		p, err := rec.ToPatient()
		if err != nil {
			return nil, fmt.Errorf("patient %d: %w", i, err)
		}
		out = append(out, p)
	}
	if i, j, dup := domain.FirstDuplicate(out); dup {
		return nil, fmt.Errorf("%s: %w", DuplicateMessage,
			&domain.DuplicatePatientError{Name: out[j].Name(), FirstIndex: i, SecondIndex: j})
	}
	return out, nil
}

// ToPatient validates the record. Blank or invalid notes are dropped; every
// other invalid field is an error.
func (r Record) ToPatient() (domain.Patient, error) {
	var d domain.Details
	var err error
	if d.Name, err = required(r.Name, domain.FieldName, domain.NewName); err != nil {
		return domain.Patient{}, err
	}
	if d.Phone, err = required(r.Phone, domain.FieldPhone, domain.NewPhone); err != nil {
		return domain.Patient{}, err
	}
	if d.Email, err = required(r.Email, domain.FieldEmail, domain.NewEmail); err != nil {
		return domain.Patient{}, err
	}
	if d.Address, err = required(r.Address, domain.FieldAddress, domain.NewAddress); err != nil {
		return domain.Patient{}, err
	}
	if d.Income, err = optional(r.Income, domain.NewIncome); err != nil {
		return domain.Patient{}, err
	}
	if d.MedicalInfo, err = optional(r.MedicalInfo, domain.NewMedicalInfo); err != nil {
		return domain.Patient{}, err
	}
	if d.Tags, err = domain.NewTags(r.Tags...); err != nil {
		return domain.Patient{}, err
	}
	for _, raw := range r.Notes {
		if n, err := domain.NewNote(raw); err == nil {
			d.Notes = append(d.Notes, n)
		}
	}
	return domain.NewPatient(d)
}

func required[T any](raw *string, field string, build func(string) (T, error)) (T, error) {
	if raw == nil {
		var zero T
		return zero, &domain.MissingFieldError{Field: field}
	}
	return build(*raw)
}

func optional[T any](raw *string, build func(string) (T, error)) (T, error) {
	if raw == nil {
		var zero T
		return zero, nil
	}
	return build(*raw)
}

func strPtr(s string) *string { return &s }

// Marshal encodes patients as an indented document.
func Marshal(patients []domain.Patient) ([]byte, error) {
	data, err := json.MarshalIndent(FromPatients(patients), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode address book: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates a document.
func Unmarshal(data []byte) ([]domain.Patient, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode address book: %w", err)
	}
	return doc.ToPatients()
}
