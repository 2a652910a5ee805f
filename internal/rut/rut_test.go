package rut

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		body string
		want byte
	}{
		{"12345678", '5'},
		{"76123456", '0'},
		{"11111111", '1'},
		{"1000005", 'K'},
		{"9999999", '3'},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got, err := CheckDigit(tt.body)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), string(got))
		})
	}

	t.Run("rejects non-digit body", func(t *testing.T) {
		_, err := CheckDigit("12a45678")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		_, err := CheckDigit("")
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestIsValid(t *testing.T) {
	valid := []string{
		"12.345.678-5",
		"123456785",
		"12345678-5",
		" 12 345 678 5 ",
		"76.123.456-0",
		"1.000.005-K",
		"1.000.005-k",
		"9999999-3",
		"11.111.111-1",
	}
	for _, raw := range valid {
		assert.True(t, IsValid(raw), "expected %q to be valid", raw)
	}

	invalid := []string{
		"",
		"-",
		"K",
		"12.345.678-4",
		"11.111.111-2",
		"1.000.005-0",
		"12a45678-5",
		"123456-0",
		"123.456.789-2",
		"12.345.678-X",
		"12.345.678/5",
	}
	for _, raw := range invalid {
		assert.False(t, IsValid(raw), "expected %q to be invalid", raw)
	}
}

func TestIsValid_PunctuationInvariant(t *testing.T) {
	for _, body := range []string{"12345678", "7654321", "20000000", "1000005"} {
		dv, err := CheckDigit(body)
		require.NoError(t, err)
		compact := body + string(dv)
		formatted := Format(compact)
		assert.Equal(t, IsValid(compact), IsValid(formatted), formatted)
		assert.True(t, IsValid(compact))
	}
}

func TestCheckDigit_RoundTrip(t *testing.T) {
	for n := 1_000_000; n < 99_999_999; n += 7_654_321 {
		body := fmt.Sprintf("%d", n)
		dv, err := CheckDigit(body)
		require.NoError(t, err)
		assert.True(t, IsValid(body+string(dv)), body)
	}
}

func TestParse(t *testing.T) {
	t.Run("returns canonical value", func(t *testing.T) {
		r, err := Parse("76123456-0")
		require.NoError(t, err)
		assert.Equal(t, "76123456", r.Body)
		assert.Equal(t, byte('0'), r.CheckDigit)
		assert.Equal(t, "76.123.456-0", r.String())
		assert.Equal(t, "761234560", r.Compact())
	})

	t.Run("lowercase k is accepted", func(t *testing.T) {
		r, err := Parse("1000005-k")
		require.NoError(t, err)
		assert.Equal(t, byte('K'), r.CheckDigit)
	})

	t.Run("error kinds", func(t *testing.T) {
		_, err := Parse("  ")
		assert.ErrorIs(t, err, ErrEmpty)
		_, err = Parse("12.3x5.678-5")
		assert.ErrorIs(t, err, ErrMalformed)
		_, err = Parse("12.345.678-Z")
		assert.ErrorIs(t, err, ErrMalformed)
		_, err = Parse("12.345.678-4")
		assert.ErrorIs(t, err, ErrCheckDigit)
	})
}

func TestValidator_StrictPolicy(t *testing.T) {
	strict := Validator{Policy: StrictPolicy()}

	assert.True(t, strict.IsValid("12.345.678-5"))
	assert.False(t, strict.IsValid("76.123.456-0"))

	_, err := strict.Parse("76.123.456-0")
	assert.ErrorIs(t, err, ErrOutOfRange)

	// 0999999 is seven digits but below the lower bound.
	dv, err := CheckDigit("0999999")
	require.NoError(t, err)
	_, err = strict.Parse("0999999" + string(dv))
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.True(t, IsValid("0999999"+string(dv)))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"compact eight digits", "761234560", "76.123.456-0"},
		{"already formatted", "76.123.456-0", "76.123.456-0"},
		{"hyphen only", "12345678-5", "12.345.678-5"},
		{"seven digits", "1000005k", "1.000.005-K"},
		{"spaces", "12 345 678 5", "12.345.678-5"},
		{"empty", "", ""},
		{"too short echoes input", "1234-5", "1234-5"},
		{"non numeric echoes input", "abc.def-1", "abc.def-1"},
		{"bad check char echoes input", "12.345.678-X", "12.345.678-X"},
		{"wrong check digit still formats", "123456784", "12.345.678-4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	for _, raw := range []string{"761234560", "1.000.005-K", "123456785", "9999999-3"} {
		once := Format(raw)
		assert.Equal(t, once, Format(once), raw)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1000005K", Normalize(" 1.000.005-k "))
	assert.Equal(t, "", Normalize(".- "))
}
