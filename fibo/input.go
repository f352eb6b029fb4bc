package fibo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrNoInput = errors.New("no input: expected an integer")

// A token that could not be parsed as the sequence index.
type InputError struct {
	Token string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Token, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Read the first whitespace-delimited token from r as a 32-bit index.
// Anything after the first token is ignored.
func ReadIndex(r io.Reader) (int32, error) {
	n, err := readInt(r, 32)
	return int32(n), err
}

// Same as ReadIndex, for BigFib.
func ReadIndex64(r io.Reader) (int64, error) {
	return readInt(r, 64)
}

func readInt(r io.Reader, bitSize int) (int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, ErrNoInput
	}

	token := scanner.Text()
	n, err := strconv.ParseInt(token, 10, bitSize)
	if err != nil {
		return 0, &InputError{Token: token, Err: err}
	}
	return n, nil
}
