package fatinspect

import (
	"os"
	"time"
)

// Name returns the 8.3 name of the entry without padding.
// The dot is omitted if the extension is empty.
func (e Entry) Name() string {
	name := trimPadding(e.Raw.Name[:])
	ext := trimPadding(e.Raw.Extension[:])

	if ext != "" {
		name += "."
	}

	return name + ext
}

// FileInfo exposes the entry as os.FileInfo.
func (e Entry) FileInfo() os.FileInfo {
	return entryFileInfo{e}
}

type entryFileInfo struct {
	entry Entry
}

func (e entryFileInfo) Name() string {
	return e.entry.Name()
}

func (e entryFileInfo) Size() int64 {
	if e.IsDir() {
		return 0
	}
	return int64(e.entry.FileSize)
}

func (e entryFileInfo) Mode() os.FileMode {
	mode := os.FileMode(0444)
	if !e.entry.Attributes.ReadOnly {
		mode |= 0222
	}

	if e.IsDir() {
		return mode | os.ModeDir | 0111
	}
	return mode
}

// ModTime returns time.Time{} if the write date is invalid.
func (e entryFileInfo) ModTime() time.Time {
	return e.entry.LastWrite.Time()
}

func (e entryFileInfo) IsDir() bool {
	return e.entry.IsDirectory
}

func (e entryFileInfo) Sys() interface{} {
	return e.entry
}
