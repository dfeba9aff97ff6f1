package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"casetrack/pkg/domain"
	"casetrack/testutil/fixtures"
)

type AddressBookSuite struct {
	suite.Suite
	book    *AddressBook
	alice   Patient
	benson  Patient
	carl    Patient
	changes []Change
}

func (s *AddressBookSuite) SetupTest() {
	s.book = NewAddressBook()
	s.alice = fixtures.BuildPatient(s.T(), fixtures.Alice)
	s.benson = fixtures.BuildPatient(s.T(), fixtures.Benson)
	s.carl = fixtures.BuildPatient(s.T(), fixtures.Carl)
	s.changes = nil
	s.book.Subscribe(func(c Change) { s.changes = append(s.changes, c) })
}

func TestAddressBookSuite(t *testing.T) {
	suite.Run(t, new(AddressBookSuite))
}

func (s *AddressBookSuite) editedAlice() Patient {
	spec := fixtures.Alice
	spec.Phone = "99999999"
	spec.Tags = []string{"husband"}
	return fixtures.BuildPatient(s.T(), spec)
}

func (s *AddressBookSuite) TestNewBookIsEmpty() {
	s.Empty(s.book.Patients())
	s.Equal(0, s.book.Len())
	s.Equal("0 patients", s.book.String())
}

func (s *AddressBookSuite) TestAddThenHas() {
	s.Require().NoError(s.book.AddPatient(s.alice))
	s.True(s.book.HasPatient(s.alice))
	s.True(s.book.HasPatient(s.editedAlice()), "identity match ignores other fields")
	s.False(s.book.HasPatient(s.benson))
	s.Require().Len(s.changes, 1)
	s.Equal(ActionCreate, s.changes[0].Action)
	s.True(s.changes[0].After.Equal(s.alice))
}

func (s *AddressBookSuite) TestAddDuplicateFails() {
	s.Require().NoError(s.book.AddPatient(s.alice))
	err := s.book.AddPatient(s.editedAlice())
	s.Require().ErrorIs(err, domain.ErrDuplicatePatient)
	var dup *domain.DuplicatePatientError
	s.Require().True(errors.As(err, &dup))
	s.Equal("Alice Pauline", dup.Name.String())
	s.Equal(1, s.book.Len())
	s.Len(s.changes, 1, "failed operations do not notify")
}

func (s *AddressBookSuite) TestAddZeroPatientFails() {
	s.ErrorIs(s.book.AddPatient(Patient{}), domain.ErrMissingField)
	s.Zero(s.book.Len())
}

func (s *AddressBookSuite) TestSetPatientReplacesInPlace() {
	s.Require().NoError(s.book.SetPatients([]Patient{s.alice, s.benson}))
	edited := s.editedAlice()
	s.Require().NoError(s.book.SetPatient(s.alice, edited))

	got := s.book.Patients()
	s.True(got[0].Equal(edited))
	s.True(got[1].Equal(s.benson))
	last := s.changes[len(s.changes)-1]
	s.Equal(ActionUpdate, last.Action)
	s.True(last.Before.Equal(s.alice))
}

func (s *AddressBookSuite) TestSetPatientTargetMissing() {
	s.Require().NoError(s.book.AddPatient(s.alice))
	s.ErrorIs(s.book.SetPatient(s.benson, s.carl), domain.ErrPatientNotFound)
	s.ErrorIs(s.book.SetPatient(s.editedAlice(), s.carl), domain.ErrPatientNotFound,
		"target is located by full equality")
}

func (s *AddressBookSuite) TestSetPatientCollidingIdentityFails() {
	s.Require().NoError(s.book.SetPatients([]Patient{s.alice, s.benson}))
	spec := fixtures.Benson
	spec.Name = fixtures.Alice.Name
	err := s.book.SetPatient(s.benson, fixtures.BuildPatient(s.T(), spec))
	s.Require().ErrorIs(err, domain.ErrDuplicatePatient)
	s.True(s.book.Patients()[1].Equal(s.benson))
}

func (s *AddressBookSuite) TestRemovePatient() {
	s.Require().NoError(s.book.SetPatients([]Patient{s.alice, s.benson, s.carl}))
	s.Require().NoError(s.book.RemovePatient(s.benson))
	got := s.book.Patients()
	s.Require().Len(got, 2)
	s.True(got[0].Equal(s.alice))
	s.True(got[1].Equal(s.carl))

	s.ErrorIs(s.book.RemovePatient(s.benson), domain.ErrPatientNotFound)
	s.ErrorIs(s.book.RemovePatient(s.editedAlice()), domain.ErrPatientNotFound)
	s.Equal(2, s.book.Len())
}

func (s *AddressBookSuite) TestResetDataReplacesContents() {
	s.Require().NoError(s.book.AddPatient(s.carl))
	other := NewAddressBook()
	s.Require().NoError(other.SetPatients([]Patient{s.alice, s.benson}))

	s.Require().NoError(s.book.ResetData(other))
	s.True(s.book.Equal(other))
	s.Equal(ActionReset, s.changes[len(s.changes)-1].Action)
}

func (s *AddressBookSuite) TestResetDataWithDuplicatesIsAtomic() {
	s.Require().NoError(s.book.SetPatients([]Patient{s.carl}))
	before := s.book.Patients()
	notified := len(s.changes)

	err := s.book.ResetData(PatientList{s.alice, s.benson, s.editedAlice()})
	s.Require().ErrorIs(err, domain.ErrDuplicatePatient)
	var dup *domain.DuplicatePatientError
	s.Require().True(errors.As(err, &dup))
	s.Equal(0, dup.FirstIndex)
	s.Equal(2, dup.SecondIndex)

	after := s.book.Patients()
	s.Require().Len(after, len(before))
	s.True(after[0].Equal(before[0]))
	s.Len(s.changes, notified)
}

func (s *AddressBookSuite) TestResetDataNil() {
	s.ErrorIs(s.book.ResetData(nil), ErrNilSnapshot)
}

func (s *AddressBookSuite) TestPatientsReturnsFreshCopy() {
	s.Require().NoError(s.book.AddPatient(s.alice))
	snapshot := s.book.Patients()
	snapshot[0] = s.benson
	s.True(s.book.Patients()[0].Equal(s.alice))
}

func (s *AddressBookSuite) TestNewAddressBookFromCopies() {
	src := PatientList{s.alice, s.benson}
	book, err := NewAddressBookFrom(src)
	s.Require().NoError(err)
	s.Equal(2, book.Len())
	s.Require().NoError(book.RemovePatient(s.alice))
	s.Len(src.Patients(), 2)

	_, err = NewAddressBookFrom(PatientList{s.alice, s.alice})
	s.ErrorIs(err, domain.ErrDuplicatePatient)
}

func (s *AddressBookSuite) TestEqual() {
	a, err := NewAddressBookFrom(PatientList{s.alice, s.benson})
	s.Require().NoError(err)
	b, err := NewAddressBookFrom(PatientList{s.alice, s.benson})
	s.Require().NoError(err)
	c, err := NewAddressBookFrom(PatientList{s.benson, s.alice})
	s.Require().NoError(err)
	s.True(a.Equal(b))
	s.False(a.Equal(c), "order matters")
	s.False(a.Equal(nil))
}

func (s *AddressBookSuite) TestSubscribeCancel() {
	var calls int
	cancel := s.book.Subscribe(func(Change) { calls++ })
	s.Require().NoError(s.book.AddPatient(s.alice))
	cancel()
	cancel()
	s.Require().NoError(s.book.AddPatient(s.benson))
	s.Equal(1, calls)
	s.Len(s.changes, 2, "other subscribers keep receiving changes")

	noop := s.book.Subscribe(nil)
	noop()
}
