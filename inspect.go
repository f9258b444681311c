// Package fatinspect reports the layout of a FAT16 volume inside a raw disk image:
// the optional MBR in front of it, its boot sector and the entries of its root directory.
// It never reads file contents and never writes.
package fatinspect

import (
	"io"

	"github.com/aligator/fatinspect/checkpoint"
	"github.com/spf13/afero"
)

// Result contains everything decoded from one image.
type Result struct {
	Location   Location
	BootSector BootSector
	// Entries are the live root directory entries in on-disk order.
	Entries []Entry
}

// BootSectorValid reports whether the boot sector signature is 0xAA55.
func (r *Result) BootSectorValid() bool {
	return r.BootSector.SignatureValid()
}

// RootDirectoryOffset is the absolute byte offset the root directory was read from.
func (r *Result) RootDirectoryOffset() int64 {
	return r.BootSector.RootDirectoryOffset(r.Location.Offset)
}

// Options control the inspection.
type Options struct {
	// SkipChecks allows boot sectors with zero geometry fields. Use with caution,
	// the computed offsets are meaningless in that case.
	SkipChecks bool
}

// Inspect decodes the image behind r.
// It fails with ErrSourceUnavailable or ErrTruncatedRead if the image cannot be read
// and with ErrInvalidGeometry if the boot sector has zero geometry fields.
// A missing MBR, an unusable partition table and a wrong boot sector signature
// are reported in the Result instead.
func Inspect(r io.ReaderAt) (*Result, error) {
	return InspectWithOptions(r, Options{})
}

// InspectSkipChecks decodes the image just like Inspect but does not validate the geometry,
// which may allow you to look at broken boot sectors.
func InspectSkipChecks(r io.ReaderAt) (*Result, error) {
	return InspectWithOptions(r, Options{SkipChecks: true})
}

// InspectWithOptions decodes the image behind r.
func InspectWithOptions(r io.ReaderAt, opts Options) (*Result, error) {
	loc, err := Locate(r)
	if err != nil {
		return nil, checkpoint.From(err)
	}

	bs, err := ReadBootSector(r, loc.Offset)
	if err != nil {
		return nil, checkpoint.From(err)
	}

	if !opts.SkipChecks {
		if err := bs.Validate(); err != nil {
			return nil, checkpoint.From(err)
		}
	}

	dir, err := ReadRootDirectory(r, loc.Offset, bs)
	if err != nil {
		return nil, checkpoint.From(err)
	}

	return &Result{
		Location:   loc,
		BootSector: bs,
		Entries:    DecodeEntries(dir, bs),
	}, nil
}

// Open opens the image at path from fs and inspects it.
// The image is closed again before Open returns.
func Open(fs afero.Fs, path string, opts Options) (*Result, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrSourceUnavailable)
	}
	defer file.Close()

	return InspectWithOptions(file, opts)
}
