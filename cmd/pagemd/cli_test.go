package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/pagemd/cmd/pagemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"extract", "convert", "compare", "batch", "history", "analyze", "ask", "serve", "render"}

// newDeps returns dependencies writing to fresh buffers.
func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range commands {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesExtractFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"extract", "https://example.com/post",
		"--engine", "readability",
		"--selector", ".ad", "--selector", ".promo",
		"--json", "--save", "--escape",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/post", cli.Extract.URL)
	assert.Equal(t, "readability", cli.Extract.Engine)
	assert.Equal(t, []string{".ad", ".promo"}, cli.Extract.Selector)
	assert.True(t, cli.Extract.JSON)
	assert.True(t, cli.Extract.Save)
	assert.True(t, cli.Extract.Escape)
}

func TestCLI_RejectsUnknownEngine(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"extract", "https://example.com", "--engine", "magic"})
	require.Error(t, err)
}

func TestCLI_BatchDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"batch", "https://a.example/1", "https://b.example/2"})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example/1", "https://b.example/2"}, cli.Batch.URLs)
	assert.Equal(t, 4, cli.Batch.Concurrency)
	assert.Equal(t, "heuristic", cli.Batch.Engine)
}
