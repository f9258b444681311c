package fatinspect

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/aligator/fatinspect/checkpoint"
)

// ReadBootSector reads the boot sector of the volume starting at offset.
// It only fails if the image ends before the boot sector does.
// A wrong signature is not an error, check SignatureValid.
func ReadBootSector(r io.ReaderAt, offset int64) (BootSector, error) {
	buf, err := readRegion(r, offset, BootSectorSize)
	if err != nil {
		return BootSector{}, checkpoint.From(err)
	}

	return DecodeBootSector(buf), nil
}

// DecodeBootSector decodes the fixed fields of a boot sector.
// All multi byte fields are little endian. buf has to be at least BootSectorSize long.
func DecodeBootSector(buf []byte) BootSector {
	_ = buf[BootSectorSize-1]

	b := BootSector{
		BytesPerSector:      binary.LittleEndian.Uint16(buf[offBytesPerSector:]),
		SectorsPerCluster:   buf[offSectorsPerCluster],
		ReservedSectorCount: binary.LittleEndian.Uint16(buf[offReservedSectors:]),
		TableCount:          buf[offTableCount],
		RootEntryCount:      binary.LittleEndian.Uint16(buf[offRootEntryCount:]),
		TotalSectors16:      binary.LittleEndian.Uint16(buf[offTotalSectors16:]),
		MediaType:           buf[offMediaType],
		TableSize16:         binary.LittleEndian.Uint16(buf[offTableSize16:]),
		SectorsPerTrack:     binary.LittleEndian.Uint16(buf[offSectorsPerTrack:]),
		HeadSideCount:       binary.LittleEndian.Uint16(buf[offHeadSideCount:]),
		HiddenSectorCount:   binary.LittleEndian.Uint32(buf[offHiddenSectors:]),
		TotalSectors32:      binary.LittleEndian.Uint32(buf[offTotalSectors32:]),
		BIOSDriveNumber:     buf[offBIOSDriveNumber],
		Reserved1:           buf[offReserved1],
		ExtBootSignature:    buf[offExtBootSignature],
		VolumeID:            binary.LittleEndian.Uint32(buf[offVolumeID:]),
		Signature:           binary.LittleEndian.Uint16(buf[offBootSignature:]),
	}

	copy(b.JumpBoot[:], buf[offJumpBoot:offOEMName])
	copy(b.OEMName[:], buf[offOEMName:offBytesPerSector])
	copy(b.VolumeLabel[:], buf[offVolumeLabel:offFileSystemType])
	copy(b.FileSystemType[:], buf[offFileSystemType:offBootCode])
	copy(b.BootCode[:], buf[offBootCode:offBootSignature])

	return b
}

// SignatureValid reports whether the boot sector ends in 0xAA55.
func (b BootSector) SignatureValid() bool {
	return b.Signature == BootSignature
}

// Validate checks the geometry fields all offset arithmetic depends on.
func (b BootSector) Validate() error {
	if b.BytesPerSector == 0 {
		return checkpoint.Wrap(fmt.Errorf("bytes per sector is 0"), ErrInvalidGeometry)
	}

	if b.SectorsPerCluster == 0 {
		return checkpoint.Wrap(fmt.Errorf("sectors per cluster is 0"), ErrInvalidGeometry)
	}

	if b.TableSize16 == 0 {
		return checkpoint.Wrap(fmt.Errorf("table size is 0"), ErrInvalidGeometry)
	}

	return nil
}

// TotalSectors returns the 16 bit count if set, else the 32 bit one.
func (b BootSector) TotalSectors() uint32 {
	if b.TotalSectors16 != 0 {
		return uint32(b.TotalSectors16)
	}
	return b.TotalSectors32
}

// RootDirectorySectors is the number of sectors the root directory occupies.
// It is 0 for a boot sector with 0 bytes per sector.
func (b BootSector) RootDirectorySectors() uint32 {
	if b.BytesPerSector == 0 {
		return 0
	}
	return uint32(b.RootEntryCount) * EntrySize / uint32(b.BytesPerSector)
}

// FirstRootDirectorySector is the sector of the root directory relative to the volume.
// It follows the reserved sectors and all FAT copies.
func (b BootSector) FirstRootDirectorySector() uint32 {
	return uint32(b.ReservedSectorCount) + uint32(b.TableCount)*uint32(b.TableSize16)
}

// RootDirectoryOffset is the absolute byte offset of the root directory for
// a volume starting at volumeOffset.
func (b BootSector) RootDirectoryOffset(volumeOffset int64) int64 {
	return volumeOffset + SectorSize*int64(b.FirstRootDirectorySector())
}

// FirstSector translates a cluster number to its first sector.
// Cluster numbering starts at 2, so clusters 0 and 1 result in a negative sector.
func (b BootSector) FirstSector(cluster uint16) int64 {
	return (int64(cluster)-2)*int64(b.SectorsPerCluster) + int64(b.FirstRootDirectorySector())
}

// OEMNameString returns the OEM name without padding.
func (b BootSector) OEMNameString() string {
	return trimPadding(b.OEMName[:])
}

// VolumeLabelString returns the volume label without padding.
func (b BootSector) VolumeLabelString() string {
	return trimPadding(b.VolumeLabel[:])
}

// FileSystemTypeString returns the file system type without padding.
func (b BootSector) FileSystemTypeString() string {
	return trimPadding(b.FileSystemType[:])
}

// trimPadding removes the trailing spaces fixed size FAT strings are padded with.
func trimPadding(b []byte) string {
	return strings.TrimRight(string(b), " ")
}
