package main_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/pagemd"
	main "github.com/fwojciec/pagemd/cmd/pagemd"
	"github.com/fwojciec/pagemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	upper := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return strings.ToUpper(html), nil
		},
	}

	t.Run("converts stdin", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Stdin = strings.NewReader("<p>hi</p>")
		deps.Converter = upper

		require.NoError(t, (&main.ConvertCmd{}).Run(deps))
		assert.Equal(t, "<P>HI</P>\n", stdout.String())
	})

	t.Run("converts file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "frag.html")
		require.NoError(t, os.WriteFile(path, []byte("<b>x</b>"), 0o644))

		deps, stdout, _ := newDeps()
		deps.Converter = upper

		require.NoError(t, (&main.ConvertCmd{File: path}).Run(deps))
		assert.Equal(t, "<B>X</B>\n", stdout.String())
	})

	t.Run("returns converter error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Stdin = strings.NewReader("")
		deps.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", pagemd.Errorf(pagemd.EEMPTY, "empty HTML input")
			},
		}

		err := (&main.ConvertCmd{}).Run(deps)
		assert.Equal(t, pagemd.EEMPTY, pagemd.ErrorCode(err))
		assert.Contains(t, stderr.String(), "empty HTML input")
		assert.Empty(t, stdout.String())
	})
}
