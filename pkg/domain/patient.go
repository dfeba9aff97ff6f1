package domain

import (
	"sort"
	"strings"
)

// Details carries the fields used to build a Patient. Income and MedicalInfo are
// optional; their zero values mean "not recorded".
type Details struct {
	Name        Name
	Phone       Phone
	Email       Email
	Address     Address
	Income      Income
	MedicalInfo MedicalInfo
	Tags        []Tag
	Notes       []Note
}

// Patient is an immutable patient record. Mutators return a new Patient and leave
// the receiver untouched.
type Patient struct {
	name        Name
	phone       Phone
	email       Email
	address     Address
	income      Income
	medicalInfo MedicalInfo
	tags        []Tag
	notes       []Note
}

// NewPatient builds a Patient from d. Name, phone, email and address are required.
// Duplicate tags collapse into one and zero notes are dropped.
func NewPatient(d Details) (Patient, error) {
	switch {
	case d.Name.IsZero():
		return Patient{}, &MissingFieldError{Field: FieldName}
	case d.Phone.IsZero():
		return Patient{}, &MissingFieldError{Field: FieldPhone}
	case d.Email.IsZero():
		return Patient{}, &MissingFieldError{Field: FieldEmail}
	case d.Address.IsZero():
		return Patient{}, &MissingFieldError{Field: FieldAddress}
	}
	return Patient{
		name:        d.Name,
		phone:       d.Phone,
		email:       d.Email,
		address:     d.Address,
		income:      d.Income,
		medicalInfo: d.MedicalInfo,
		tags:        normalizeTags(d.Tags),
		notes:       compactNotes(d.Notes),
	}, nil
}

func normalizeTags(in []Tag) []Tag {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[Tag]struct{}, len(in))
	out := make([]Tag, 0, len(in))
	for _, t := range in {
		if t.IsZero() {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func compactNotes(in []Note) []Note {
	if len(in) == 0 {
		return nil
	}
	out := make([]Note, 0, len(in))
	for _, n := range in {
		if !n.IsZero() {
			out = append(out, n)
		}
	}
	return out
}

func (p Patient) Name() Name               { return p.name }
func (p Patient) Phone() Phone             { return p.phone }
func (p Patient) Email() Email             { return p.email }
func (p Patient) Address() Address         { return p.address }
func (p Patient) MedicalInfo() MedicalInfo { return p.medicalInfo }

// Income returns the recorded income and whether one was recorded.
func (p Patient) Income() (Income, bool) { return p.income, !p.income.IsZero() }

// Tags returns the tag set sorted by name.
func (p Patient) Tags() []Tag { return append([]Tag(nil), p.tags...) }

// Notes returns the notes in insertion order.
func (p Patient) Notes() []Note { return append([]Note(nil), p.notes...) }

// NoteCount returns the number of notes held.
func (p Patient) NoteCount() int { return len(p.notes) }

// HasTag reports whether the patient carries t.
func (p Patient) HasTag(t Tag) bool {
	for _, existing := range p.tags {
		if existing == t {
			return true
		}
	}
	return false
}

// IsZero reports whether p was never built through NewPatient.
func (p Patient) IsZero() bool { return p.name.IsZero() }

// Details returns an editable copy of the patient's fields.
func (p Patient) Details() Details {
	return Details{
		Name:        p.name,
		Phone:       p.phone,
		Email:       p.email,
		Address:     p.address,
		Income:      p.income,
		MedicalInfo: p.medicalInfo,
		Tags:        p.Tags(),
		Notes:       p.Notes(),
	}
}

// SameIdentity reports whether p and other name the same person.
func (p Patient) SameIdentity(other Patient) bool {
	return p.name == other.name
}

// Equal reports whether every field, the tag set and the note list match.
func (p Patient) Equal(other Patient) bool {
	if p.name != other.name || p.phone != other.phone || p.email != other.email ||
		p.address != other.address || p.income != other.income || p.medicalInfo != other.medicalInfo {
		return false
	}
	if len(p.tags) != len(other.tags) || len(p.notes) != len(other.notes) {
		return false
	}
	for i := range p.tags {
		if p.tags[i] != other.tags[i] {
			return false
		}
	}
	for i := range p.notes {
		if p.notes[i] != other.notes[i] {
			return false
		}
	}
	return true
}

// AddNote returns a copy of p with note appended. A zero note is ignored.
func (p Patient) AddNote(note Note) Patient {
	if note.IsZero() {
		return p
	}
	next := p
	next.notes = append(p.Notes(), note)
	return next
}

// RemoveNote returns a copy of p without the note at index.
func (p Patient) RemoveNote(index int) (Patient, error) {
	if index < 0 || index >= len(p.notes) {
		return p, &NoteIndexError{Index: index, Count: len(p.notes)}
	}
	notes := make([]Note, 0, len(p.notes)-1)
	notes = append(notes, p.notes[:index]...)
	notes = append(notes, p.notes[index+1:]...)
	next := p
	next.notes = notes
	return next, nil
}

func (p Patient) String() string {
	var b strings.Builder
	b.WriteString(p.name.String())
	b.WriteString("; Phone: ")
	b.WriteString(p.phone.String())
	b.WriteString("; Email: ")
	b.WriteString(p.email.String())
	b.WriteString("; Address: ")
	b.WriteString(p.address.String())
	if !p.income.IsZero() {
		b.WriteString("; Income: ")
		b.WriteString(p.income.String())
	}
	if !p.medicalInfo.IsZero() {
		b.WriteString("; Medical Info: ")
		b.WriteString(p.medicalInfo.String())
	}
	b.WriteString("; Tags: ")
	for _, t := range p.tags {
		b.WriteString("[")
		b.WriteString(t.String())
		b.WriteString("]")
	}
	return b.String()
}

// FirstDuplicate returns the indexes of the first pair of patients sharing an
// identity, scanning in order.
func FirstDuplicate(patients []Patient) (first, second int, ok bool) {
	seen := make(map[Name]int, len(patients))
	for i, p := range patients {
		if j, dup := seen[p.name]; dup {
			return j, i, true
		}
		seen[p.name] = i
	}
	return -1, -1, false
}
