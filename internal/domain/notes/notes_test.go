package notes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Nil(t, Encode(nil, nil))
	assert.Nil(t, Encode([]string{}, []string{}))

	got := Encode([]string{"queso"}, []string{"cebolla"})
	require.NotNil(t, got)
	assert.Equal(t, "EXTRAS: queso | SIN: cebolla", *got)

	got = Encode([]string{"a", "b", "c"}, nil)
	require.NotNil(t, got)
	assert.Equal(t, "EXTRAS: a,b,c", *got)

	got = Encode(nil, []string{"x", "y"})
	require.NotNil(t, got)
	assert.Equal(t, "SIN: x,y", *got)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      *string
		extras  []string
		removed []string
	}{
		{name: "nil", in: nil, extras: []string{}, removed: []string{}},
		{name: "removed only", in: ptr("SIN: cebolla"), extras: []string{}, removed: []string{"cebolla"}},
		{name: "extras only", in: ptr("EXTRAS: queso, panceta"), extras: []string{"queso", "panceta"}, removed: []string{}},
		{name: "both", in: ptr("EXTRAS: queso | SIN: cebolla,tomate"), extras: []string{"queso"}, removed: []string{"cebolla", "tomate"}},
		{name: "reversed order", in: ptr("SIN: cebolla | EXTRAS: queso"), extras: []string{"queso"}, removed: []string{"cebolla"}},
		{name: "empty tokens dropped", in: ptr("EXTRAS: a,, ,b"), extras: []string{"a", "b"}, removed: []string{}},
		{name: "stray pipe", in: ptr("|"), extras: []string{}, removed: []string{}},
		{name: "free text", in: ptr("sin sal por favor"), extras: []string{}, removed: []string{}},
		{name: "empty string", in: ptr(""), extras: []string{}, removed: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decode(tt.in)
			assert.Equal(t, tt.extras, d.Extras)
			assert.Equal(t, tt.removed, d.Removed)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		extras  []string
		removed []string
	}{
		{extras: []string{"queso"}, removed: []string{"cebolla"}},
		{extras: []string{"huevo", "jamón", "doble carne"}, removed: nil},
		{extras: nil, removed: []string{"pepino", "mostaza"}},
		{extras: []string{"a"}, removed: []string{"b", "c", "d"}},
	}
	for _, c := range cases {
		d := Decode(Encode(c.extras, c.removed))
		assert.Equal(t, nonNil(c.extras), d.Extras)
		assert.Equal(t, nonNil(c.removed), d.Removed)
	}
}

func TestDecodeString(t *testing.T) {
	d := DecodeString("")
	assert.Empty(t, d.Extras)
	assert.Empty(t, d.Removed)
	assert.Equal(t, []string{"x"}, DecodeString("SIN: x").Removed)
}

func TestValidateTokens(t *testing.T) {
	require.NoError(t, ValidateTokens([]string{"queso", "doble carne"}))
	assert.True(t, errors.Is(ValidateTokens([]string{"a,b"}), ErrUnsupportedToken))
	assert.True(t, errors.Is(ValidateTokens([]string{"a|b"}), ErrUnsupportedToken))
}

func TestClean(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Clean([]string{" a ", "", "  ", "b"}))
}

func ptr(s string) *string { return &s }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
