package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ShayanBytes/Practices/fibo"

	"github.com/bmizerany/assert"
)

func execute(stdin string, args ...string) (string, string, error) {
	cmd := newCommand()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPrintsOneLine(t *testing.T) {
	for in, expect := range map[string]string{
		"1\n":  "1\n",
		"2\n":  "1\n",
		"3\n":  "2\n",
		"5\n":  "5\n",
		"10\n": "55\n",
		"47":   "-1323752223\n",
	} {
		out, errOut, err := execute(in)
		assert.Equalf(t, nil, err, "%q", in)
		assert.Equalf(t, expect, out, "%q", in)
		assert.Equal(t, "", errOut)
	}
}

func TestBig(t *testing.T) {
	out, _, err := execute("100", "--big")
	assert.Equal(t, nil, err)
	assert.Equal(t, "354224848179261915075\n", out)
}

func TestVerbose(t *testing.T) {
	out, errOut, err := execute("10", "-v")
	assert.Equal(t, nil, err)
	assert.Equal(t, "55\n", out)
	assert.T(t, strings.Contains(errOut, "F(10) = 55"), errOut)
}

func TestNotInteger(t *testing.T) {
	out, _, err := execute("abc")
	var inputErr *fibo.InputError
	assert.T(t, errors.As(err, &inputErr), err)
	assert.Equal(t, "", out)
}

func TestNoInput(t *testing.T) {
	_, _, err := execute("")
	assert.Equal(t, fibo.ErrNoInput, err)
}

func TestDomain(t *testing.T) {
	for _, in := range []string{"0", "-4"} {
		out, _, err := execute(in)
		assert.Equalf(t, fibo.ErrDomain, err, "%q", in)
		assert.Equal(t, "", out)
	}
	_, _, err := execute("0", "--big")
	assert.Equal(t, fibo.ErrDomain, err)
}

func TestRejectsArgs(t *testing.T) {
	_, _, err := execute("5", "5")
	assert.NotEqual(t, nil, err)
}
