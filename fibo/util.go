package fibo

import (
	"io"
	"io/ioutil"
	"log"
)

// Logger for verbose command output, written to w (normally stderr).
func WriterLog(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.LstdFlags|log.Lshortfile)
}

func NullLog() *log.Logger {
	return log.New(ioutil.Discard, "", log.LstdFlags)
}
