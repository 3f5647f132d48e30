package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xnslong/cli-tools/hexfixture/fixture"
)

func parse(t *testing.T, args ...string) (*options, error) {
	t.Helper()

	cli := &options{}
	parser := newParser(cli, kong.Writers(io.Discard, io.Discard), kong.Exit(func(int) {}))
	_, err := parseArgs(parser, args)
	return cli, err
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		mode    fixture.Mode
		value   string
		out     string
		verbose int
	}{
		{name: "string", args: []string{"-s", "AB"}, mode: fixture.ModeString, value: "AB", out: "-"},
		{name: "long string flag", args: []string{"--string", "AB"}, mode: fixture.ModeString, value: "AB", out: "-"},
		{name: "float", args: []string{"-f", "1.0"}, mode: fixture.ModeFloat, value: "1.0", out: "-"},
		{name: "double", args: []string{"--double", "1.0"}, mode: fixture.ModeDouble, value: "1.0", out: "-"},
		{name: "byte", args: []string{"-b", "64"}, mode: fixture.ModeByte, value: "64", out: "-"},
		{name: "short", args: []string{"--short", "64"}, mode: fixture.ModeShort, value: "64", out: "-"},
		{name: "int", args: []string{"-i", "64"}, mode: fixture.ModeInt, value: "64", out: "-"},
		{name: "long", args: []string{"-l", "64"}, mode: fixture.ModeLong, value: "64", out: "-"},
		{name: "negative after separator", args: []string{"-f", "--", "-1.5"}, mode: fixture.ModeFloat, value: "-1.5", out: "-"},
		{name: "negative", args: []string{"-f", "-1.5"}, mode: fixture.ModeFloat, value: "-1.5", out: "-"},
		{name: "negative before flag", args: []string{"-2", "-d"}, mode: fixture.ModeDouble, value: "-2", out: "-"},
		{name: "negative fraction", args: []string{"-d", "-.5"}, mode: fixture.ModeDouble, value: "-.5", out: "-"},
		{name: "negative output file", args: []string{"-o", "-1", "-b", "-1"}, mode: fixture.ModeByte, value: "-1", out: "-1"},
		{name: "string wins over float", args: []string{"-s", "-f", "1.0"}, mode: fixture.ModeString, value: "1.0", out: "-"},
		{name: "float wins over double", args: []string{"-d", "-f", "1.0"}, mode: fixture.ModeFloat, value: "1.0", out: "-"},
		{name: "no mode", args: []string{"AB"}, mode: fixture.ModeNone, value: "AB", out: "-"},
		{name: "output and verbosity", args: []string{"-vv", "-o", "out.hex", "-d", "2"}, mode: fixture.ModeDouble, value: "2", out: "out.hex", verbose: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, err := parse(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, cli.mode())
			assert.Equal(t, tt.value, cli.Value)
			assert.Equal(t, tt.out, cli.Out)
			assert.Equal(t, tt.verbose, cli.Verbose)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing value", args: []string{"-s"}},
		{name: "unknown flag", args: []string{"-x", "1"}},
		{name: "two values", args: []string{"-f", "-1", "-2"}},
		{name: "extra value", args: []string{"-s", "A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestPositionalNegatives(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{name: "nothing to move", args: []string{"-s", "AB"}, expected: []string{"-s", "AB"}},
		{name: "negative value", args: []string{"-f", "-1.5"}, expected: []string{"-f", "--", "-1.5"}},
		{name: "value before flags", args: []string{"-3", "-i", "-v"}, expected: []string{"-i", "-v", "--", "-3"}},
		{name: "already separated", args: []string{"-f", "--", "-1.5"}, expected: []string{"-f", "--", "-1.5"}},
		{name: "output file", args: []string{"-o", "-1", "-f", "2"}, expected: []string{"--output-file=-1", "-f", "2"}},
		{name: "not a number", args: []string{"-f", "-inf"}, expected: []string{"-f", "-inf"}},
		{name: "exponent", args: []string{"-d", "-1e5"}, expected: []string{"-d", "-1e5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, positionalNegatives(tt.args))
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "string", args: []string{"-s", "AB"}, expected: "2\n41 42\n"},
		{name: "float", args: []string{"-f", "1.0"}, expected: "3f 80 0 0\n"},
		{name: "double", args: []string{"-d", "1.0"}, expected: "3f f0 0 0 0 0 0 0\n"},
		{name: "negative float", args: []string{"-f", "--", "-1.5"}, expected: "bf c0 0 0\n"},
		{name: "negative float without separator", args: []string{"-f", "-1.5"}, expected: "bf c0 0 0\n"},
		{name: "negative double without separator", args: []string{"-d", "-2"}, expected: "c0 0 0 0 0 0 0 0\n"},
		{name: "negative byte", args: []string{"-b", "-1"}, expected: "ff\n"},
		{name: "several modes", args: []string{"-s", "-f", "1.0"}, expected: "3\n31 2e 30\n"},
		{name: "int", args: []string{"-i", "0x40000000"}, expected: "40 0 0 0\n"},
		{name: "no mode", args: []string{"AB"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, err := parse(t, tt.args...)
			require.NoError(t, err)

			var stdout bytes.Buffer
			require.NoError(t, run(context.Background(), cli, &stdout))
			assert.Equal(t, tt.expected, stdout.String())
		})
	}
}

func TestRunOutputFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "float_tag.hex")
	cli, err := parse(t, "-f", "-o", file, "64")
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), cli, &stdout))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "42 80 0 0\n", string(data))
}

func TestRunErrors(t *testing.T) {
	cli, err := parse(t, "-f", "one")
	require.NoError(t, err)

	var stdout bytes.Buffer
	err = run(context.Background(), cli, &stdout)
	var parseErr *fixture.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Empty(t, stdout.String())

	cli, err = parse(t, "-b", "300")
	require.NoError(t, err)
	err = run(context.Background(), cli, &stdout)
	assert.True(t, errors.Is(err, fixture.ErrOverflow))

	cli, err = parse(t, "-s", "-o", filepath.Join(t.TempDir(), "missing", "out.hex"), "AB")
	require.NoError(t, err)
	assert.Error(t, run(context.Background(), cli, &stdout))
}
