package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatientRequiresIdentityFields(t *testing.T) {
	cases := map[string]func(*Details){
		FieldName:    func(d *Details) { d.Name = Name{} },
		FieldPhone:   func(d *Details) { d.Phone = Phone{} },
		FieldEmail:   func(d *Details) { d.Email = Email{} },
		FieldAddress: func(d *Details) { d.Address = Address{} },
	}
	for field, drop := range cases {
		t.Run(field, func(t *testing.T) {
			d := aliceDetails(t)
			drop(&d)
			_, err := NewPatient(d)
			require.ErrorIs(t, err, ErrMissingField)
			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, field, missing.Field)
			assert.Equal(t, "Patient's "+field+" field is missing!", err.Error())
		})
	}
}

func TestNewPatientOptionalFieldsAbsent(t *testing.T) {
	d := aliceDetails(t)
	d.Income = Income{}
	d.MedicalInfo = MedicalInfo{}
	p := mustPatient(t, d)

	_, ok := p.Income()
	assert.False(t, ok)
	assert.True(t, p.MedicalInfo().IsZero())

	zero, err := NewIncome("0")
	require.NoError(t, err)
	d.Income = zero
	withZero := mustPatient(t, d)
	inc, ok := withZero.Income()
	assert.True(t, ok)
	assert.Equal(t, "0", inc.String())
	assert.False(t, p.Equal(withZero), "absent income differs from recorded zero income")
}

func TestNewPatientNormalizesTags(t *testing.T) {
	d := aliceDetails(t)
	d.Tags = []Tag{mustTag(t, "owesMoney"), mustTag(t, "friends"), mustTag(t, "friends")}
	p := mustPatient(t, d)
	got := make([]string, 0)
	for _, tag := range p.Tags() {
		got = append(got, tag.String())
	}
	assert.Equal(t, []string{"friends", "owesMoney"}, got)
	assert.True(t, p.HasTag(mustTag(t, "owesMoney")))
	assert.False(t, p.HasTag(mustTag(t, "family")))
}

func TestPatientAccessorsReturnCopies(t *testing.T) {
	p := mustPatient(t, aliceDetails(t))
	tags := p.Tags()
	tags[0] = mustTag(t, "mutated")
	notes := p.Notes()
	notes[0] = mustNote(t, "mutated")

	assert.Equal(t, "friends", p.Tags()[0].String())
	assert.Equal(t, "First visit", p.Notes()[0].String())

	d := p.Details()
	d.Notes[0] = mustNote(t, "changed via details")
	assert.Equal(t, "First visit", p.Notes()[0].String())
}

func TestSameIdentityIsNameOnly(t *testing.T) {
	alice := mustPatient(t, aliceDetails(t))
	assert.True(t, alice.SameIdentity(alice), "reflexive")

	d := aliceDetails(t)
	d.Phone, _ = NewPhone("99999999")
	d.Email, _ = NewEmail("other@example.com")
	d.Tags = nil
	edited := mustPatient(t, d)
	assert.True(t, alice.SameIdentity(edited))
	assert.True(t, edited.SameIdentity(alice), "symmetric")
	assert.False(t, alice.Equal(edited))

	d = aliceDetails(t)
	d.Name = mustName(t, "Alice Pauline Tan")
	other := mustPatient(t, d)
	assert.False(t, alice.SameIdentity(other))

	d = aliceDetails(t)
	d.Name = mustName(t, "alice pauline")
	lower := mustPatient(t, d)
	assert.False(t, alice.SameIdentity(lower))
}

func TestEqualComparesAllFields(t *testing.T) {
	a := mustPatient(t, aliceDetails(t))
	b := mustPatient(t, aliceDetails(t))
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))

	c := b.AddNote(mustNote(t, "another"))
	assert.False(t, a.Equal(c))

	d := aliceDetails(t)
	d.MedicalInfo, _ = NewMedicalInfo("Diabetes")
	assert.False(t, a.Equal(mustPatient(t, d)))
}

func TestAddNoteLeavesOriginalUntouched(t *testing.T) {
	p := mustPatient(t, aliceDetails(t))
	next := p.AddNote(mustNote(t, "Second visit"))

	assert.Equal(t, 1, p.NoteCount())
	require.Equal(t, 2, next.NoteCount())
	assert.Equal(t, "Second visit", next.Notes()[1].String())

	assert.True(t, next.AddNote(Note{}).Equal(next), "zero note is ignored")
}

func TestNoteRoundTrip(t *testing.T) {
	p := mustPatient(t, aliceDetails(t))
	added := p.AddNote(mustNote(t, "Second visit"))
	removed, err := added.RemoveNote(added.NoteCount() - 1)
	require.NoError(t, err)
	assert.True(t, removed.Equal(p))

	first, err := added.RemoveNote(0)
	require.NoError(t, err)
	require.Equal(t, 1, first.NoteCount())
	assert.Equal(t, "Second visit", first.Notes()[0].String())
	assert.Equal(t, 2, added.NoteCount())
}

func TestRemoveNoteOutOfRange(t *testing.T) {
	p := mustPatient(t, aliceDetails(t))
	for _, idx := range []int{-1, 1, 5} {
		got, err := p.RemoveNote(idx)
		require.ErrorIs(t, err, ErrNoteIndexOutOfRange)
		var nerr *NoteIndexError
		require.True(t, errors.As(err, &nerr))
		assert.Equal(t, idx, nerr.Index)
		assert.Equal(t, 1, nerr.Count)
		assert.True(t, got.Equal(p))
	}
	assert.Equal(t, 1, p.NoteCount())
}

func TestDetailsRebuildProducesEqualPatient(t *testing.T) {
	p := mustPatient(t, aliceDetails(t))
	rebuilt := mustPatient(t, p.Details())
	assert.True(t, p.Equal(rebuilt))
	if diff := cmp.Diff(p.String(), rebuilt.String()); diff != "" {
		t.Fatalf("string mismatch (-want +got):\n%s", diff)
	}
}

func TestPatientString(t *testing.T) {
	p := mustPatient(t, aliceDetails(t))
	assert.Equal(t,
		"Alice Pauline; Phone: 94351253; Email: alice@example.com; Address: 123, Jurong West Ave 6, #08-111; "+
			"Income: 3000; Medical Info: Asthma; Tags: [friends]",
		p.String())
}

func TestFirstDuplicate(t *testing.T) {
	alice := mustPatient(t, aliceDetails(t))
	d := aliceDetails(t)
	d.Name = mustName(t, "Benson Meier")
	benson := mustPatient(t, d)
	d = aliceDetails(t)
	d.Phone, _ = NewPhone("12345678")
	aliceAgain := mustPatient(t, d)

	_, _, ok := FirstDuplicate([]Patient{alice, benson})
	assert.False(t, ok)

	i, j, ok := FirstDuplicate([]Patient{alice, benson, aliceAgain})
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, j)
}
