package domain

import "testing"

func mustName(t testing.TB, s string) Name {
	t.Helper()
	v, err := NewName(s)
	if err != nil {
		t.Fatalf("name %q: %v", s, err)
	}
	return v
}

func mustTag(t testing.TB, s string) Tag {
	t.Helper()
	v, err := NewTag(s)
	if err != nil {
		t.Fatalf("tag %q: %v", s, err)
	}
	return v
}

func mustNote(t testing.TB, s string) Note {
	t.Helper()
	v, err := NewNote(s)
	if err != nil {
		t.Fatalf("note %q: %v", s, err)
	}
	return v
}

// aliceDetails returns a fully populated Details value.
func aliceDetails(t testing.TB) Details {
	t.Helper()
	phone, _ := NewPhone("94351253")
	email, _ := NewEmail("alice@example.com")
	addr, _ := NewAddress("123, Jurong West Ave 6, #08-111")
	income, _ := NewIncome("3000")
	med, _ := NewMedicalInfo("Asthma")
	return Details{
		Name:        mustName(t, "Alice Pauline"),
		Phone:       phone,
		Email:       email,
		Address:     addr,
		Income:      income,
		MedicalInfo: med,
		Tags:        []Tag{mustTag(t, "friends")},
		Notes:       []Note{mustNote(t, "First visit")},
	}
}

func mustPatient(t testing.TB, d Details) Patient {
	t.Helper()
	p, err := NewPatient(d)
	if err != nil {
		t.Fatalf("new patient: %v", err)
	}
	return p
}
