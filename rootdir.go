package fatinspect

import (
	"encoding/binary"
	"io"

	"github.com/aligator/fatinspect/checkpoint"
)

// ReadRootDirectory reads all RootEntryCount slots of the root directory of the volume
// starting at volumeOffset.
func ReadRootDirectory(r io.ReaderAt, volumeOffset int64, bs BootSector) (*RootDirectory, error) {
	buf, err := readRegion(r, bs.RootDirectoryOffset(volumeOffset), RootEntryCount*EntrySize)
	if err != nil {
		return nil, checkpoint.From(err)
	}

	dir := &RootDirectory{}
	for i := range dir {
		dir[i] = DecodeDirEntry(buf[i*EntrySize:])
	}

	return dir, nil
}

// DecodeDirEntry decodes one directory slot. buf has to be at least EntrySize long.
func DecodeDirEntry(buf []byte) DirEntry {
	_ = buf[EntrySize-1]

	e := DirEntry{
		Attributes:   Attributes(buf[offEntryAttributes]),
		WriteTime:    binary.LittleEndian.Uint16(buf[offEntryWriteTime:]),
		WriteDate:    binary.LittleEndian.Uint16(buf[offEntryWriteDate:]),
		FirstCluster: binary.LittleEndian.Uint16(buf[offEntryCluster:]),
		FileSize:     binary.LittleEndian.Uint32(buf[offEntryFileSize:]),
	}

	copy(e.Name[:], buf[offEntryName:offEntryExtension])
	copy(e.Extension[:], buf[offEntryExtension:offEntryAttributes])
	copy(e.Reserved[:], buf[offEntryReserved:offEntryWriteTime])

	return e
}
