package html_test

import (
	"testing"

	"github.com/fwojciec/pagemd/html"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses spaces", "a   b", "a b"},
		{"collapses newlines and tabs", "a\n\n\tb\r\nc", "a b c"},
		{"trims edges", "  hello  ", "hello"},
		{"collapses unicode whitespace", "a  b", "a b"},
		{"empty string", "", ""},
		{"whitespace only", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, html.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"  lead and trail  ",
		"para one\n\n\npara two",
		"tabs\t\tand nbsp",
		"\n\n\n",
	}

	for _, in := range inputs {
		once := html.Normalize(in)
		assert.Equal(t, once, html.Normalize(once), "input %q", in)
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	t.Run("escapes every control character", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `\\\*\_\`+"`"+`\[\]\(\)\#\+\-\=\|\{\}\.\!`, html.Escape("\\*_`[]()#+-=|{}.!"))
	})

	t.Run("leaves plain text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello world", html.Escape("hello world"))
	})

	t.Run("escapes already escaped text again", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `\\\*`, html.Escape(`\*`))
	})
}
