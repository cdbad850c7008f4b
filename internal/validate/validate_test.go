package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"fullname" validate:"required"`
	Email string `json:"email" validate:"required"`
	Note  string `json:"note"`
}

func TestStructReportsJSONNames(t *testing.T) {
	fields, err := Struct(sample{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, fields)

	fields, err = Struct(sample{Name: "x", Email: "y"})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestID(t *testing.T) {
	cases := map[string]struct {
		want int64
		ok   bool
	}{
		"1":    {1, true},
		" 42 ": {42, true},
		"0":    {0, false},
		"-5":   {0, false},
		"abc":  {0, false},
		"":     {0, false},
		"1.5":  {0, false},
	}
	for in, tc := range cases {
		got, ok := ID(in)
		assert.Equal(t, tc.ok, ok, in)
		assert.Equal(t, tc.want, got, in)
	}
}
