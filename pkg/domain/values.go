package domain

import (
	"regexp"
	"strings"
)

// Field names used in validation and missing-field errors. They double as the
// keys shown to users when a stored record is rejected.
const (
	FieldName        = "Name"
	FieldPhone       = "Phone"
	FieldEmail       = "Email"
	FieldAddress     = "Address"
	FieldIncome      = "Income"
	FieldMedicalInfo = "MedicalInfo"
	FieldTag         = "Tag"
	FieldNote        = "Note"
)

// Constraint messages reported when a raw value fails validation.
const (
	NameConstraints = "Names should only contain letters, digits, spaces and the punctuation ' - . , /, " +
		"and it should not be blank"
	PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints = "Emails should be of the format local-part@domain " +
		"and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, " +
		"excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
	AddressConstraints     = "Addresses can take any values, and it should not be blank"
	IncomeConstraints      = "Income should be a non-negative number with at most 2 decimal places"
	MedicalInfoConstraints = "Medical info can take any values, and it should not be blank"
	TagConstraints         = "Tags names should be alphanumeric"
	NoteConstraints        = "Notes can take any values, and it should not be blank"
)

var (
	nameRe   = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '\-.,/]*$`)
	phoneRe  = regexp.MustCompile(`^[0-9]{3,}$`)
	incomeRe = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	tagRe    = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	emailRe  = regexp.MustCompile(
		`^[A-Za-z0-9]+([+_.\-][A-Za-z0-9]+)*` +
			`@([A-Za-z0-9]+(-[A-Za-z0-9]+)*\.)*` +
			`([A-Za-z0-9]{2,}(-[A-Za-z0-9]+)*|[A-Za-z0-9](-[A-Za-z0-9]+)+)$`)
)

// IsValidName reports whether s is an acceptable patient name.
func IsValidName(s string) bool { return nameRe.MatchString(s) }

// IsValidPhone reports whether s is an acceptable phone number.
func IsValidPhone(s string) bool { return phoneRe.MatchString(s) }

// IsValidEmail reports whether s is an acceptable email address.
func IsValidEmail(s string) bool { return emailRe.MatchString(s) }

// IsValidAddress reports whether s is an acceptable address.
func IsValidAddress(s string) bool { return notBlank(s) }

// IsValidIncome reports whether s is a non-negative amount.
func IsValidIncome(s string) bool { return incomeRe.MatchString(s) }

// IsValidMedicalInfo reports whether s is acceptable medical information.
func IsValidMedicalInfo(s string) bool { return notBlank(s) }

// IsValidTag reports whether s is an acceptable tag name.
func IsValidTag(s string) bool { return tagRe.MatchString(s) }

// IsValidNote reports whether s is an acceptable case note.
func IsValidNote(s string) bool { return notBlank(s) }

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }

// validate trims raw and checks it against valid, returning the trimmed payload.
func validate(field, raw string, valid func(string) bool, message string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !valid(trimmed) {
		return "", &ValidationError{Field: field, Message: message}
	}
	return trimmed, nil
}

// Name is a patient's full name. Two patients with the same Name are the same patient.
type Name struct{ value string }

// NewName validates raw and returns the trimmed Name.
func NewName(raw string) (Name, error) {
	v, err := validate(FieldName, raw, IsValidName, NameConstraints)
	if err != nil {
		return Name{}, err
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// IsZero reports whether n holds no value.
func (n Name) IsZero() bool { return n.value == "" }

// Phone is a digits-only phone number.
type Phone struct{ value string }

// NewPhone validates raw and returns the trimmed Phone.
func NewPhone(raw string) (Phone, error) {
	v, err := validate(FieldPhone, raw, IsValidPhone, PhoneConstraints)
	if err != nil {
		return Phone{}, err
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }

// IsZero reports whether p holds no value.
func (p Phone) IsZero() bool { return p.value == "" }

// Email is a local-part@domain address.
type Email struct{ value string }

// NewEmail validates raw and returns the trimmed Email.
func NewEmail(raw string) (Email, error) {
	v, err := validate(FieldEmail, raw, IsValidEmail, EmailConstraints)
	if err != nil {
		return Email{}, err
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

// IsZero reports whether e holds no value.
func (e Email) IsZero() bool { return e.value == "" }

// Address is a free-form postal address.
type Address struct{ value string }

// NewAddress validates raw and returns the trimmed Address.
func NewAddress(raw string) (Address, error) {
	v, err := validate(FieldAddress, raw, IsValidAddress, AddressConstraints)
	if err != nil {
		return Address{}, err
	}
	return Address{value: v}, nil
}

func (a Address) String() string { return a.value }

// IsZero reports whether a holds no value.
func (a Address) IsZero() bool { return a.value == "" }

// Income is a non-negative monthly income. The zero Income means "not recorded".
type Income struct{ value string }

// NewIncome validates raw and returns the trimmed Income.
func NewIncome(raw string) (Income, error) {
	v, err := validate(FieldIncome, raw, IsValidIncome, IncomeConstraints)
	if err != nil {
		return Income{}, err
	}
	return Income{value: v}, nil
}

func (i Income) String() string { return i.value }

// IsZero reports whether no income was recorded. Income("0") is not zero.
func (i Income) IsZero() bool { return i.value == "" }

// MedicalInfo holds free-form medical notes. The zero MedicalInfo means "not recorded".
type MedicalInfo struct{ value string }

// NewMedicalInfo validates raw and returns the trimmed MedicalInfo.
func NewMedicalInfo(raw string) (MedicalInfo, error) {
	v, err := validate(FieldMedicalInfo, raw, IsValidMedicalInfo, MedicalInfoConstraints)
	if err != nil {
		return MedicalInfo{}, err
	}
	return MedicalInfo{value: v}, nil
}

func (m MedicalInfo) String() string { return m.value }

// IsZero reports whether m holds no value.
func (m MedicalInfo) IsZero() bool { return m.value == "" }

// Tag is an alphanumeric label.
type Tag struct{ name string }

// NewTag validates raw and returns the trimmed Tag.
func NewTag(raw string) (Tag, error) {
	v, err := validate(FieldTag, raw, IsValidTag, TagConstraints)
	if err != nil {
		return Tag{}, err
	}
	return Tag{name: v}, nil
}

// NewTags validates every raw tag name, failing on the first invalid one.
func NewTags(raw ...string) ([]Tag, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, err := NewTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func (t Tag) String() string { return t.name }

// IsZero reports whether t holds no value.
func (t Tag) IsZero() bool { return t.name == "" }

// Note is a single case note.
type Note struct{ value string }

// NewNote validates raw and returns the trimmed Note.
func NewNote(raw string) (Note, error) {
	v, err := validate(FieldNote, raw, IsValidNote, NoteConstraints)
	if err != nil {
		return Note{}, err
	}
	return Note{value: v}, nil
}

func (n Note) String() string { return n.value }

// IsZero reports whether n holds no value.
func (n Note) IsZero() bool { return n.value == "" }
