package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type valueCase struct {
	field   string
	build   func(string) error
	valid   []string
	invalid []string
}

func valueCases() []valueCase {
	wrap := func(fn func(string) (any, error)) func(string) error {
		return func(s string) error { _, err := fn(s); return err }
	}
	return []valueCase{
		{
			field: FieldName,
			build: wrap(func(s string) (any, error) { return NewName(s) }),
			valid: []string{"Alex Yeoh", "peter jack", "12345", "peter the 2nd", "Capital Tan",
				"David Roger Jackson Ray Jr 2nd", "Dr. O'Neil-Smith, s/o Tan", "Zoë Ångström"},
			invalid: []string{"", " ", "^", "peter*", "R@chel", "-Alex", "'quoted"},
		},
		{
			field:   FieldPhone,
			build:   wrap(func(s string) (any, error) { return NewPhone(s) }),
			valid:   []string{"911", "93121534", "87438807", "124293842033123"},
			invalid: []string{"", " ", "91", "phone", "9011p041", "9312 1534", "+651234"},
		},
		{
			field: FieldEmail,
			build: wrap(func(s string) (any, error) { return NewEmail(s) }),
			valid: []string{"PeterJack_1190@example.com", "a@bc", "test@localhost", "123@145",
				"a1+be.d@example1.com", "peter_jack@very-very-very-long-example.com",
				"e1234567@u.nus.edu", "alexyeoh@example.com"},
			invalid: []string{"", " ", "@example.com", "peterjackexample.com", "peterjack@",
				"peterjack@example.c", "peter jack@example.com", "peterjack@-example.com",
				"example.com", "peterjack@example.com-", "-peterjack@example.com",
				"peterjack@example_com", "peter..jack@example.com"},
		},
		{
			field:   FieldAddress,
			build:   wrap(func(s string) (any, error) { return NewAddress(s) }),
			valid:   []string{"Blk 456, Den Road, #01-355", "-", "Leng Inc; 1234 Market St"},
			invalid: []string{"", " ", "\t\n"},
		},
		{
			field:   FieldIncome,
			build:   wrap(func(s string) (any, error) { return NewIncome(s) }),
			valid:   []string{"0", "3000", "4500.50", "0.5", "12.34"},
			invalid: []string{"", "-5", "abc", "1.234", "1.", ".5", "1,000"},
		},
		{
			field:   FieldMedicalInfo,
			build:   wrap(func(s string) (any, error) { return NewMedicalInfo(s) }),
			valid:   []string{"Asthma", "Type 2 diabetes; metformin 500mg"},
			invalid: []string{"", "   "},
		},
		{
			field:   FieldTag,
			build:   wrap(func(s string) (any, error) { return NewTag(s) }),
			valid:   []string{"friends", "abc123", "A"},
			invalid: []string{"", "#friend", "two words", "high-risk"},
		},
		{
			field:   FieldNote,
			build:   wrap(func(s string) (any, error) { return NewNote(s) }),
			valid:   []string{"x", "Follow up in two weeks."},
			invalid: []string{"", "   "},
		},
	}
}

func TestValueTypesValidation(t *testing.T) {
	for _, tc := range valueCases() {
		t.Run(tc.field, func(t *testing.T) {
			for _, raw := range tc.valid {
				assert.NoError(t, tc.build(raw), "expected %q to be a valid %s", raw, tc.field)
			}
			for _, raw := range tc.invalid {
				err := tc.build(raw)
				require.Error(t, err, "expected %q to be an invalid %s", raw, tc.field)
				assert.ErrorIs(t, err, ErrValidation)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tc.field, verr.Field)
				assert.Equal(t, verr.Message, err.Error())
			}
		})
	}
}

func TestValueTypesTrimInput(t *testing.T) {
	name, err := NewName("  Alex Yeoh \t")
	require.NoError(t, err)
	assert.Equal(t, "Alex Yeoh", name.String())

	phone, err := NewPhone(" 87438807 ")
	require.NoError(t, err)
	assert.Equal(t, "87438807", phone.String())

	tag, err := NewTag(" friends ")
	require.NoError(t, err)
	assert.Equal(t, "friends", tag.String())
}

func TestValueTypesCompareByPayload(t *testing.T) {
	a, err := NewName("Alex Yeoh")
	require.NoError(t, err)
	b, err := NewName(" Alex Yeoh")
	require.NoError(t, err)
	c, err := NewName("alex yeoh")
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.False(t, a == c, "names compare case-sensitively")
	assert.True(t, Name{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestIncomeZeroIsRecorded(t *testing.T) {
	zero, err := NewIncome("0")
	require.NoError(t, err)
	assert.False(t, zero.IsZero(), "recorded zero income is distinct from absent income")
	assert.Equal(t, "0", zero.String())

	inc, err := NewIncome(" 4500.50 ")
	require.NoError(t, err)
	assert.Equal(t, "4500.50", inc.String())

	assert.True(t, Income{}.IsZero())
}

func TestNewTagsStopsAtFirstInvalid(t *testing.T) {
	tags, err := NewTags("friends", "colleagues")
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	_, err = NewTags("friends", "#friend", "ok")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, TagConstraints, err.Error())
}

func TestIsValidPredicatesMatchConstructors(t *testing.T) {
	assert.True(t, IsValidPhone("87438807"))
	assert.False(t, IsValidPhone("+651234"))
	assert.True(t, IsValidIncome("0"))
	assert.False(t, IsValidIncome("-5"))
	assert.False(t, IsValidEmail("example.com"))
	assert.False(t, IsValidAddress(" "))
	assert.False(t, IsValidTag("#friend"))
	assert.False(t, IsValidName("R@chel"))
	assert.True(t, IsValidNote("n"))
	assert.False(t, IsValidMedicalInfo(""))
}
