// Package sample provides the patients used to seed an empty address book.
package sample

import (
	"fmt"

	"casetrack/internal/core"
	"casetrack/pkg/domain"
)

type record struct {
	name, phone, email, address, income string
	tags                                []string
}

var records = []record{
	{"Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29, #06-40", "3000",
		[]string{"friends"}},
	{"Bernice Yu", "99272758", "berniceyu@example.com", "Blk 30 Lorong 3 Serangoon Gardens, #07-18", "4500.50",
		[]string{"colleagues", "friends"}},
	{"Charlotte Oliveiro", "93210283", "charlotte@example.com", "Blk 11 Ang Mo Kio Street 74, #11-04", "5200",
		[]string{"neighbours"}},
	{"David Li", "91031282", "lidavid@example.com", "Blk 436 Serangoon Gardens Street 26, #16-43", "0",
		[]string{"family"}},
	{"Irfan Ibrahim", "92492021", "irfan@example.com", "Blk 47 Tampines Street 20, #17-35", "1200",
		[]string{"classmates"}},
	{"Roy Balakrishnan", "92624417", "royb@example.com", "Blk 45 Aljunied Street 85, #11-31", "3800",
		[]string{"colleagues"}},
}

// Patients returns freshly built sample patients.
func Patients() []domain.Patient {
	out := make([]domain.Patient, 0, len(records))
	for _, r := range records {
		out = append(out, mustBuild(r))
	}
	return out
}

// AddressBook returns a book holding the sample patients.
func AddressBook() *core.AddressBook {
	book, err := core.NewAddressBookFrom(core.PatientList(Patients()))
	if err != nil {
		panic(fmt.Errorf("sample address book: %w", err))
	}
	return book
}

func mustBuild(r record) domain.Patient {
	var d domain.Details
	var err error
	check := func(e error) {
		if e != nil {
			panic(fmt.Errorf("sample %s: %w", r.name, e))
		}
	}
	d.Name, err = domain.NewName(r.name)
	check(err)
	d.Phone, err = domain.NewPhone(r.phone)
	check(err)
	d.Email, err = domain.NewEmail(r.email)
	check(err)
	d.Address, err = domain.NewAddress(r.address)
	check(err)
	d.Income, err = domain.NewIncome(r.income)
	check(err)
	d.Tags, err = domain.NewTags(r.tags...)
	check(err)
	p, err := domain.NewPatient(d)
	check(err)
	return p
}
