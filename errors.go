package main

import (
	"fmt"
	"strings"
)

// ErrorList collects lexing and parsing errors so a whole file can be
// reported in one pass instead of stopping at the first bad token.
type ErrorList struct {
	errors []string
}

func (e *ErrorList) Add(format string, args ...interface{}) {
	e.errors = append(e.errors, fmt.Sprintf(format, args...))
}

func (e *ErrorList) HasErrors() bool {
	return len(e.errors) > 0
}

func (e *ErrorList) Count() int {
	return len(e.errors)
}

func (e *ErrorList) String() string {
	return strings.Join(e.errors, "\n")
}
