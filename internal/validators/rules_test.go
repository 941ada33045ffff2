package validators

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailRule(t *testing.T) {
	valid := []string{
		"a@b.com",
		"john.doe@example.org",
		"first_last+tag@mail.example.co.uk",
		"user-name@sub-domain.example.io",
		"UPPER@CASE.NET",
		"x1@y2.info",
	}
	invalid := []string{
		"",
		"not-an-email",
		"abc",
		"a@b",
		"a@b.c",
		"@b.com",
		"a@.com",
		"a..b@c.com",
		".a@b.com",
		"a@b.com.",
		"a b@c.com",
		" a@b.com",
		"a@b.com ",
		"a@b.c0m",
		"a@@b.com",
	}

	for _, v := range valid {
		t.Run("valid/"+v, func(t *testing.T) {
			res := ValidateField(Field{Name: FieldEmail, Value: v, Rules: []Rule{EmailRule()}})
			assert.True(t, res.IsValid(), res.String())
		})
	}

	for _, v := range invalid {
		t.Run("invalid/"+v, func(t *testing.T) {
			res := ValidateField(Field{Name: FieldEmail, Value: v, Rules: []Rule{EmailRule()}})
			if diff := cmp.Diff([]*ValidationError{ErrInvalidEmail}, res.Errors()); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPasswordLengthRule(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "empty", value: "", valid: false},
		{name: "seven", value: "abcdefg", valid: false},
		{name: "eight", value: "abcdefgh", valid: true},
		{name: "long", value: strings.Repeat("x", 200), valid: true},
		{name: "seven multibyte runes", value: "пароль1", valid: false},
		{name: "eight multibyte runes", value: "пароль12", valid: true},
		{name: "spaces count", value: "        ", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateField(Field{Name: FieldPassword, Value: tt.value, Rules: []Rule{PasswordLengthRule()}})
			if tt.valid {
				assert.True(t, res.IsValid())
				assert.Nil(t, res.Errors())
				return
			}
			if diff := cmp.Diff([]*ValidationError{ErrPasswordLength}, res.Errors()); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewLengthRule(t *testing.T) {
	desc := &ValidationError{Kind: InsufficientLength, Message: "length"}

	tests := []struct {
		name    string
		min     int
		max     int
		err     *ValidationError
		wantErr error
	}{
		{name: "min only", min: 3, err: desc},
		{name: "min and max", min: 3, max: 5, err: desc},
		{name: "equal bounds", min: 4, max: 4, err: desc},
		{name: "max below min", min: 5, max: 3, err: desc, wantErr: ErrInvalidLengthRange},
		{name: "negative min", min: -1, err: desc, wantErr: ErrInvalidLengthRange},
		{name: "nil descriptor", min: 1, wantErr: ErrNilDescriptor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewLengthRule(tt.min, tt.max, tt.err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rule)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.err, rule.Descriptor())
		})
	}
}

func TestLengthRule_Bounds(t *testing.T) {
	desc := &ValidationError{Kind: InsufficientLength, Message: "3 to 5 characters"}
	rule, err := NewLengthRule(3, 5, desc)
	require.NoError(t, err)

	assert.False(t, rule.Check("ab"))
	assert.True(t, rule.Check("abc"))
	assert.True(t, rule.Check("abcde"))
	assert.False(t, rule.Check("abcdef"))

	// one descriptor for both bounds
	res := ValidateField(Field{Value: "abcdef", Rules: []Rule{rule}})
	assert.Same(t, desc, res.First())
}

func TestNewPatternRule(t *testing.T) {
	desc := &ValidationError{Kind: InvalidPattern, Message: "digits only"}

	rule, err := NewPatternRule(`^[0-9]+$`, desc)
	require.NoError(t, err)
	assert.Equal(t, `^[0-9]+$`, rule.Pattern())
	assert.True(t, rule.Check("123"))
	assert.False(t, rule.Check("12a"))
	assert.Same(t, desc, rule.Descriptor())

	_, err = NewPatternRule(`^[0-9+$`, desc)
	require.Error(t, err)

	_, err = NewPatternRule(`^.*$`, nil)
	require.ErrorIs(t, err, ErrNilDescriptor)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "invalid_pattern", InvalidPattern.String())
	assert.Equal(t, "insufficient_length", InsufficientLength.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
