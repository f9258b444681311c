package fatinspect

import (
	"errors"
	"fmt"
	"io"

	"github.com/aligator/fatinspect/checkpoint"
)

// These errors may occur while inspecting an image.
var (
	ErrSourceUnavailable = errors.New("image source unavailable")
	ErrTruncatedRead     = errors.New("truncated read")
	ErrInvalidGeometry   = errors.New("invalid volume geometry")
)

// imageReader is the random access source an image is decoded from.
// It mainly exists to be able to mock failing sources in tests.
// Generated mock using mockgen:
//  mockgen -source=reader.go -destination=reader_mock.go -package fatinspect
type imageReader interface {
	ReadAt(p []byte, off int64) (n int, err error)
}

// readRegion reads exactly size bytes at the absolute offset.
// A short read is reported as ErrTruncatedRead, every other failure as ErrSourceUnavailable.
func readRegion(r io.ReaderAt, offset int64, size int) ([]byte, error) {
	buf := make([]byte, size)
	n, err := r.ReadAt(buf, offset)

	// io.ReaderAt may return io.EOF together with a complete read at the end of the image.
	if n == size {
		return buf, nil
	}

	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		short := fmt.Errorf("%w: got %d of %d bytes at offset %d", io.ErrUnexpectedEOF, n, size, offset)
		return nil, checkpoint.Wrap(short, ErrTruncatedRead)
	}

	return nil, checkpoint.Wrap(err, ErrSourceUnavailable)
}
