package core

import (
	"errors"
	"fmt"

	"casetrack/pkg/domain"
)

// ErrNilSnapshot is returned when a nil source is passed where a book is required.
var ErrNilSnapshot = errors.New("core: nil address book snapshot")

// ReadOnlyAddressBook exposes the ordered patients of a book without mutators.
type ReadOnlyAddressBook interface {
	Patients() []Patient
}

// PatientList adapts a plain slice to ReadOnlyAddressBook.
type PatientList []Patient

// Patients returns a copy of the list.
func (l PatientList) Patients() []Patient { return append([]Patient(nil), l...) }

// Action indicates the type of modification performed on the book.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionReset  Action = "reset"
)

// Change describes a committed mutation. Before is zero for creates, After is
// zero for deletes and both are zero for resets.
type Change struct {
	Action Action
	Before Patient
	After  Patient
}

type subscriber struct {
	id int
	fn func(Change)
}

// AddressBook is an ordered list of patients in which no two members share an
// identity. Failed operations leave the book untouched.
type AddressBook struct {
	patients    []Patient
	subscribers []subscriber
	nextSubID   int
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// NewAddressBookFrom returns a book holding the patients of src.
func NewAddressBookFrom(src ReadOnlyAddressBook) (*AddressBook, error) {
	b := NewAddressBook()
	if err := b.ResetData(src); err != nil {
		return nil, err
	}
	return b, nil
}

// ResetData replaces the contents of the book with those of src.
func (b *AddressBook) ResetData(src ReadOnlyAddressBook) error {
	if src == nil {
		return ErrNilSnapshot
	}
	return b.SetPatients(src.Patients())
}

// SetPatients replaces the contents of the book. The incoming list is checked for
// identity collisions before anything is swapped in.
func (b *AddressBook) SetPatients(patients []Patient) error {
	next := make([]Patient, 0, len(patients))
	for i, p := range patients {
		if p.IsZero() {
			return fmt.Errorf("patient %d: %w", i, &domain.MissingFieldError{Field: domain.FieldName})
		}
		next = append(next, p)
	}
	if i, j, dup := domain.FirstDuplicate(next); dup {
		return &domain.DuplicatePatientError{Name: next[j].Name(), FirstIndex: i, SecondIndex: j}
	}
	b.patients = next
	b.notify(Change{Action: ActionReset})
	return nil
}

// HasPatient reports whether a patient with the same identity as p is present.
func (b *AddressBook) HasPatient(p Patient) bool {
	return b.indexOfIdentity(p) >= 0
}

// AddPatient appends p. It fails when a patient with the same identity exists.
func (b *AddressBook) AddPatient(p Patient) error {
	if p.IsZero() {
		return &domain.MissingFieldError{Field: domain.FieldName}
	}
	if b.HasPatient(p) {
		return &domain.DuplicatePatientError{Name: p.Name(), FirstIndex: -1, SecondIndex: -1}
	}
	b.patients = append(b.patients, p)
	b.notify(Change{Action: ActionCreate, After: p})
	return nil
}

// SetPatient replaces target, located by full equality, with edited in place.
func (b *AddressBook) SetPatient(target, edited Patient) error {
	idx := b.indexOf(target)
	if idx < 0 {
		return domain.ErrPatientNotFound
	}
	if edited.IsZero() {
		return &domain.MissingFieldError{Field: domain.FieldName}
	}
	for i, p := range b.patients {
		if i != idx && p.SameIdentity(edited) {
			return &domain.DuplicatePatientError{Name: edited.Name(), FirstIndex: i, SecondIndex: idx}
		}
	}
	next := append([]Patient(nil), b.patients...)
	next[idx] = edited
	b.patients = next
	b.notify(Change{Action: ActionUpdate, Before: target, After: edited})
	return nil
}

// RemovePatient removes the patient equal to p.
func (b *AddressBook) RemovePatient(p Patient) error {
	idx := b.indexOf(p)
	if idx < 0 {
		return domain.ErrPatientNotFound
	}
	next := make([]Patient, 0, len(b.patients)-1)
	next = append(next, b.patients[:idx]...)
	next = append(next, b.patients[idx+1:]...)
	removed := b.patients[idx]
	b.patients = next
	b.notify(Change{Action: ActionDelete, Before: removed})
	return nil
}

// Patients returns a fresh copy of the patients in order.
func (b *AddressBook) Patients() []Patient {
	return append([]Patient(nil), b.patients...)
}

// Len returns the number of patients.
func (b *AddressBook) Len() int { return len(b.patients) }

// Equal reports whether both books hold equal patients in the same order.
func (b *AddressBook) Equal(other *AddressBook) bool {
	if other == nil {
		return false
	}
	if len(b.patients) != len(other.patients) {
		return false
	}
	for i := range b.patients {
		if !b.patients[i].Equal(other.patients[i]) {
			return false
		}
	}
	return true
}

func (b *AddressBook) String() string {
	return fmt.Sprintf("%d patients", len(b.patients))
}

// Subscribe registers fn to receive every committed change. The returned func
// removes the subscription.
func (b *AddressBook) Subscribe(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	b.nextSubID++
	id := b.nextSubID
	b.subscribers = append(b.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range b.subscribers {
			if s.id == id {
				b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (b *AddressBook) notify(change Change) {
	subs := append([]subscriber(nil), b.subscribers...)
	for _, s := range subs {
		s.fn(change)
	}
}

func (b *AddressBook) indexOf(p Patient) int {
	for i, existing := range b.patients {
		if existing.Equal(p) {
			return i
		}
	}
	return -1
}

func (b *AddressBook) indexOfIdentity(p Patient) int {
	for i, existing := range b.patients {
		if existing.SameIdentity(p) {
			return i
		}
	}
	return -1
}
