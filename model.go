// File model contains the records which match the on-disk structures of a FAT16 volume
// and the byte offsets they are decoded from.

package fatinspect

const (
	// SectorSize is the sector size all offset arithmetic of the volume uses.
	// Note that bytes_per_sector of the boot sector is only reported, never used for offsets.
	SectorSize = 512

	// BootSectorSize is the size of the fixed boot sector record.
	BootSectorSize = 512

	// RootEntryCount is the fixed number of slots in a FAT16 root directory.
	RootEntryCount = 224

	// EntrySize is the stride of a directory entry.
	EntrySize = 32

	// BootSignature is expected at offset 510 of the boot sector.
	BootSignature = 0xAA55
)

// Byte offsets inside the boot sector.
const (
	offJumpBoot          = 0
	offOEMName           = 3
	offBytesPerSector    = 11
	offSectorsPerCluster = 13
	offReservedSectors   = 14
	offTableCount        = 16
	offRootEntryCount    = 17
	offTotalSectors16    = 19
	offMediaType         = 21
	offTableSize16       = 22
	offSectorsPerTrack   = 24
	offHeadSideCount     = 26
	offHiddenSectors     = 28
	offTotalSectors32    = 32
	offBIOSDriveNumber   = 36
	offReserved1         = 37
	offExtBootSignature  = 38
	offVolumeID          = 39
	offVolumeLabel       = 43
	offFileSystemType    = 54
	offBootCode          = 62
	offBootSignature     = 510
)

// Byte offsets inside a directory entry.
const (
	offEntryName       = 0
	offEntryExtension  = 8
	offEntryAttributes = 11
	offEntryReserved   = 12
	offEntryWriteTime  = 22
	offEntryWriteDate  = 24
	offEntryCluster    = 26
	offEntryFileSize   = 28
)

// BootSector is the decoded boot sector of a FAT16 volume.
type BootSector struct {
	JumpBoot            [3]byte
	OEMName             [8]byte
	BytesPerSector      uint16
	SectorsPerCluster   uint8
	ReservedSectorCount uint16
	TableCount          uint8
	RootEntryCount      uint16
	TotalSectors16      uint16
	MediaType           uint8
	TableSize16         uint16
	SectorsPerTrack     uint16
	HeadSideCount       uint16
	HiddenSectorCount   uint32
	TotalSectors32      uint32
	BIOSDriveNumber     uint8
	Reserved1           uint8
	ExtBootSignature    uint8
	VolumeID            uint32
	VolumeLabel         [11]byte
	FileSystemType      [8]byte
	BootCode            [448]byte
	Signature           uint16
}

// DirEntry is one raw 32 byte slot of the root directory.
type DirEntry struct {
	Name       [8]byte
	Extension  [3]byte
	Attributes Attributes
	// Reserved holds bytes 12-21 (creation stamps, access date, high cluster word) which
	// FAT16 root entries are not decoded from.
	Reserved     [10]byte
	WriteTime    uint16
	WriteDate    uint16
	FirstCluster uint16
	FileSize     uint32
}

// RootDirectory is the fixed table of the root directory in on-disk order.
type RootDirectory [RootEntryCount]DirEntry
