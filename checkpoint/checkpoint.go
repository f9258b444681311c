// Package checkpoint decorates errors with the location they passed through
// on their way up, which gives a short trace when an inspection fails.
// A sentinel added at a checkpoint can be checked by errors.Is and retrieved by errors.As,
// and so can the wrapped cause.
package checkpoint

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// From adds the caller location to err without describing it further.
// It returns nil, if err == nil.
func From(err error) error {
	if err == nil {
		return nil
	}

	return &checkpoint{
		prev:  err,
		frame: caller(),
	}
}

// Wrap adds a checkpoint for cause and describes it by err, usually a
// predefined sentinel:
//  var ErrTruncatedRead = errors.New("truncated read")
//
//  func readRegion(...) error {
//  	...
//  	return checkpoint.Wrap(io.ErrUnexpectedEOF, ErrTruncatedRead)
//  }
// The result matches both errors.Is(result, ErrTruncatedRead) and
// errors.Is(result, io.ErrUnexpectedEOF).
// Returns nil if cause == nil.
func Wrap(cause, err error) error {
	if cause == nil {
		return nil
	}

	return &checkpoint{
		err:   err,
		prev:  cause,
		frame: caller(),
	}
}

// frame is the position a checkpoint was created at.
type frame struct {
	ok       bool
	file     string
	line     int
	function string
}

func (f frame) String() string {
	if !f.ok {
		return "unknown"
	}
	if f.function == "" {
		return fmt.Sprintf("%s:%d", f.file, f.line)
	}
	return fmt.Sprintf("%s:%d %s", f.file, f.line, f.function)
}

// caller returns the frame of the function calling From or Wrap.
func caller() frame {
	pcs := make([]uintptr, 1)
	if runtime.Callers(3, pcs) == 0 {
		return frame{}
	}

	fr, _ := runtime.CallersFrames(pcs).Next()
	name := fr.Function
	// Strip the import path, keep package.Function.
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	return frame{
		ok:       true,
		file:     filepath.Base(fr.File),
		line:     fr.Line,
		function: name,
	}
}

type checkpoint struct {
	// err may be nil for checkpoints created by From.
	err   error
	prev  error
	frame frame
}

func (e *checkpoint) Error() string {
	var b strings.Builder
	if e.err != nil {
		b.WriteString(e.err.Error())
		b.WriteString(": ")
	}
	b.WriteString(e.prev.Error())
	b.WriteString(" [")
	b.WriteString(e.frame.String())
	b.WriteString("]")
	return b.String()
}

func (e *checkpoint) Unwrap() error {
	return e.prev
}

func (e *checkpoint) Is(target error) bool {
	return e.err != nil && errors.Is(e.err, target)
}

func (e *checkpoint) As(target interface{}) bool {
	return e.err != nil && errors.As(e.err, target)
}
