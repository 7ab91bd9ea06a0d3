package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/tensor"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cli := NewCLI()
	var out, errOut bytes.Buffer
	cli.SetOut(&out)
	cli.SetErr(&errOut)
	cli.SetIn(strings.NewReader(stdin))
	cli.SetArgs(args)
	err := cli.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "ndtensor "+version+"\n", out)
}

func TestIterate(t *testing.T) {
	out, err := run(t, "", "iterate", "--dims", "3,4", "--range", "0:1", "--range", ":")
	require.NoError(t, err)
	assert.Contains(t, out, "tensor: [3 4]\n")
	assert.Contains(t, out, "view: [2 4]\n")
	assert.Contains(t, out, "levels: 2\n")
	assert.Contains(t, out, "size: 8\n")
	assert.Contains(t, out, "OFFSET")
	assert.Contains(t, out, "[1 3]")
}

func TestIterateContiguousMerges(t *testing.T) {
	out, err := run(t, "", "iterate", "--dims", "3,4")
	require.NoError(t, err)
	assert.Contains(t, out, "levels: 1\n")
	assert.Contains(t, out, "size: 12\n")
}

func TestIterateErrors(t *testing.T) {
	_, err := run(t, "", "iterate", "--dims", "3", "--range", "0:3")
	require.ErrorIs(t, err, tensor.ErrOutOfBounds)

	_, err = run(t, "", "iterate", "--dims", "3", "--range", "x")
	require.ErrorIs(t, err, tensor.ErrInvalidRange)

	_, err = run(t, "", "iterate", "--dims", "3,-1")
	require.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{":", tensor.Full().String()},
		{"_", tensor.Full().String()},
		{"2", tensor.Single(2).String()},
		{"1:4", tensor.Span(1, 4).String()},
		{"4:0:-2", tensor.Stepped(4, 0, -2).String()},
		{"[3, 1,1]", tensor.Indexed([]int{3, 1, 1}).String()},
		{"[]", tensor.Indexed(nil).String()},
		{"empty", tensor.Empty().String()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := parseRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}

	for _, bad := range []string{"", "a:b", "1:2:3:4", "[1,x]"} {
		_, err := parseRange(bad)
		require.ErrorIs(t, err, tensor.ErrInvalidRange, bad)
	}
}

func TestCSRFromStdin(t *testing.T) {
	input := "# duplicates are summed\n0 0 1\n\n0 0 2\n1 1 5\n"
	out, err := run(t, input, "csr", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "shape: 2x2\n")
	assert.Contains(t, out, "row_start: [0 1 2]\n")
	assert.Contains(t, out, "column: [0 1]\n")
	assert.Contains(t, out, "data: [3 5]\n")
	assert.Contains(t, out, "ROW")
}

func TestCSRFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 0 1.5\n"), 0o600))

	out, err := run(t, "", "csr", "--rows", "4", "--cols", "2", "--dense=false", path)
	require.NoError(t, err)
	assert.Contains(t, out, "shape: 4x2\n")
	assert.Contains(t, out, "row_start: [0 0 0 1 1]\n")
	assert.NotContains(t, out, "ROW")
}

func TestCSRErrors(t *testing.T) {
	_, err := run(t, "0 0\n", "csr", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	_, err = run(t, "0 5 1\n", "csr", "--cols", "2", "-")
	require.ErrorIs(t, err, tensor.ErrOutOfBounds)

	_, err = run(t, "", "csr", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
