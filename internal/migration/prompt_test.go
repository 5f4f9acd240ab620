package migration

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdinPrompter_OnlyExplicitYesConfirms(t *testing.T) {
	cases := map[string]bool{
		"y\n":    true,
		"Y\n":    true,
		"yes\n":  true,
		"YES\n":  true,
		"n\n":    false,
		"no\n":   false,
		"\n":     false,
		"yep\n":  false,
		"  y \n": true,
	}

	for input, want := range cases {
		p := NewStdinPrompter(strings.NewReader(input), io.Discard)
		ok, err := p.Confirm("Continue?")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "input %q", input)
	}
}

func TestStdinPrompter_EOFMeansNo(t *testing.T) {
	p := NewStdinPrompter(strings.NewReader(""), io.Discard)
	ok, err := p.Confirm("Continue?")
	require.NoError(t, err)
	assert.False(t, ok)
}
