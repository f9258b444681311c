package fatinspect

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	mbrSignature1 = 0x55
	mbrSignature2 = 0xAA

	partitionTableOffset = 0x01BE
	partitionEntrySize   = 16
	partitionCount       = 4

	// maxPartitionLBA is the exclusive upper bound for a usable starting LBA.
	maxPartitionLBA = 0x0FFFFFFF
)

// MBRStatus describes what the first sector of an image looked like.
type MBRStatus int

const (
	// NoMBR means the first sector does not end in the 0x55 0xAA signature.
	NoMBR MBRStatus = iota
	// NoValidPartition means the signature is present but the first partition
	// does not start at a usable LBA.
	NoValidPartition
	// Partitioned means the volume starts at the first partition.
	Partitioned
)

func (s MBRStatus) String() string {
	switch s {
	case NoMBR:
		return "no MBR"
	case NoValidPartition:
		return "no valid partition"
	case Partitioned:
		return "partitioned"
	default:
		return "unknown"
	}
}

// Partition is one primary entry of an MBR partition table.
type Partition struct {
	Status      uint8
	Type        uint8
	StartLBA    uint32
	SectorCount uint32
}

// Active reports whether the bootable flag is set.
func (p Partition) Active() bool {
	return p.Status&0x80 != 0
}

// Empty reports whether the slot is unused.
func (p Partition) Empty() bool {
	return p.Type == 0 && p.StartLBA == 0 && p.SectorCount == 0
}

// Location is where the FAT16 volume begins inside an image.
type Location struct {
	// Offset is the absolute byte offset of the boot sector.
	Offset int64
	Status MBRStatus
	// StartLBA is the starting LBA of the first partition as read, even if it is unusable.
	StartLBA uint32
	// Partitions is only filled if the MBR signature is present.
	Partitions [partitionCount]Partition
}

// Locate determines the byte offset of the FAT16 volume.
// It only fails if the image cannot be read at all. An image shorter than one
// sector is treated as having no MBR.
func Locate(r io.ReaderAt) (Location, error) {
	sector, err := readRegion(r, 0, SectorSize)
	if errors.Is(err, ErrTruncatedRead) {
		return Location{Status: NoMBR}, nil
	}
	if err != nil {
		return Location{}, err
	}

	return locate(sector), nil
}

// locate decodes the first sector of an image.
func locate(sector []byte) Location {
	if sector[510] != mbrSignature1 || sector[511] != mbrSignature2 {
		return Location{Status: NoMBR}
	}

	loc := Location{Status: NoValidPartition}
	for i := range loc.Partitions {
		loc.Partitions[i] = decodePartition(sector[partitionTableOffset+i*partitionEntrySize:])
	}

	loc.StartLBA = loc.Partitions[0].StartLBA
	if loc.StartLBA > 0 && loc.StartLBA < maxPartitionLBA {
		loc.Status = Partitioned
		loc.Offset = int64(loc.StartLBA) * SectorSize
	}

	return loc
}

func decodePartition(entry []byte) Partition {
	return Partition{
		Status:      entry[0],
		Type:        entry[4],
		StartLBA:    binary.LittleEndian.Uint32(entry[8:]),
		SectorCount: binary.LittleEndian.Uint32(entry[12:]),
	}
}
