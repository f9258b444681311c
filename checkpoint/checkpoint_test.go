package checkpoint

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

var (
	errSentinel = errors.New("a sentinel")
	errOther    = errors.New("another sentinel")
)

type pathError struct{ path string }

func (p *pathError) Error() string { return "bad path " + p.path }

func TestFrom(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantNil bool
		wantIs  []error
	}{
		{
			name:    "nil stays nil",
			err:     nil,
			wantNil: true,
		},
		{
			name:   "cause is still reachable",
			err:    io.ErrUnexpectedEOF,
			wantIs: []error{io.ErrUnexpectedEOF},
		},
		{
			name:   "nested checkpoints",
			err:    Wrap(os.ErrNotExist, errSentinel),
			wantIs: []error{os.ErrNotExist, errSentinel},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			if (got == nil) != tt.wantNil {
				t.Fatalf("From() = %v, wantNil %v", got, tt.wantNil)
			}
			for _, target := range tt.wantIs {
				if !errors.Is(got, target) {
					t.Errorf("errors.Is(From(), %v) = false, want true", target)
				}
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name      string
		cause     error
		err       error
		wantNil   bool
		wantIs    []error
		wantNotIs []error
	}{
		{
			name:    "nil cause results in nil",
			cause:   nil,
			err:     errSentinel,
			wantNil: true,
		},
		{
			name:      "cause and sentinel are both reachable",
			cause:     io.ErrUnexpectedEOF,
			err:       errSentinel,
			wantIs:    []error{io.ErrUnexpectedEOF, errSentinel},
			wantNotIs: []error{errOther},
		},
		{
			name:   "io.EOF is wrapped like any other error",
			cause:  io.EOF,
			err:    errSentinel,
			wantIs: []error{io.EOF, errSentinel},
		},
		{
			name:      "nil sentinel only exposes the cause",
			cause:     io.EOF,
			err:       nil,
			wantIs:    []error{io.EOF},
			wantNotIs: []error{errSentinel},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.cause, tt.err)
			if (got == nil) != tt.wantNil {
				t.Fatalf("Wrap() = %v, wantNil %v", got, tt.wantNil)
			}
			for _, target := range tt.wantIs {
				if !errors.Is(got, target) {
					t.Errorf("errors.Is(Wrap(), %v) = false, want true", target)
				}
			}
			for _, target := range tt.wantNotIs {
				if errors.Is(got, target) {
					t.Errorf("errors.Is(Wrap(), %v) = true, want false", target)
				}
			}
		})
	}
}

func TestWrap_As(t *testing.T) {
	err := Wrap(io.EOF, &pathError{path: "disk.img"})

	var target *pathError
	if !errors.As(err, &target) {
		t.Fatalf("errors.As() = false, want true")
	}
	if target.path != "disk.img" {
		t.Errorf("errors.As() path = %v, want %v", target.path, "disk.img")
	}
}

func TestCheckpoint_Error(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, errSentinel)
	msg := err.Error()

	for _, want := range []string{"a sentinel: unexpected EOF", "checkpoint_test.go:", "checkpoint.TestCheckpoint_Error"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}
}
