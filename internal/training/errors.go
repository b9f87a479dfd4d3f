package training

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownActivity matches any UnknownActivityError.
	ErrUnknownActivity = errors.New("unknown activity")
	// ErrArityMismatch matches any ArityMismatchError.
	ErrArityMismatch = errors.New("reading count mismatch")
)

// UnknownActivityError reports a package code outside RUN, WLK and SWM.
type UnknownActivityError struct {
	Code string
}

func (e *UnknownActivityError) Error() string {
	codes := make([]string, 0, len(Kinds()))
	for _, kind := range Kinds() {
		codes = append(codes, string(kind))
	}
	return fmt.Sprintf("unknown activity %q (want one of %s)", e.Code, strings.Join(codes, ", "))
}

func (e *UnknownActivityError) Is(target error) bool {
	return target == ErrUnknownActivity
}

// ArityMismatchError reports a package whose reading count does not match
// the variant's declared fields.
type ArityMismatchError struct {
	Code     string
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("activity %s expects %d readings (%s), got %d",
		e.Code, e.Expected, strings.Join(Fields(Kind(e.Code)), ", "), e.Actual)
}

func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}
