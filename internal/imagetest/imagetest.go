// Package imagetest assembles small FAT16 images, optionally behind an MBR,
// for tests and for generating the images in testdata.
package imagetest

import (
	"encoding/binary"
	"os"

	"github.com/spf13/afero"
)

const sectorSize = 512

// Geometry holds the boot sector fields an image is laid out by.
type Geometry struct {
	BytesPerSector    uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	TableCount        uint8
	TableSize         uint16
	RootEntries       uint16
	TotalSectors16    uint16
	TotalSectors32    uint32
	Media             uint8
}

// Floppy is the geometry of a 1.44 MB floppy formatted as FAT16 with 4 sectors per cluster.
func Floppy() Geometry {
	return Geometry{
		BytesPerSector:    512,
		SectorsPerCluster: 4,
		ReservedSectors:   1,
		TableCount:        2,
		TableSize:         9,
		RootEntries:       224,
		TotalSectors16:    2880,
		Media:             0xF0,
	}
}

// Entry is one root directory slot.
type Entry struct {
	// Name and Ext get padded with spaces. A Name starting with "\xe5" ends the scan.
	Name string
	Ext  string
	// Unused writes a slot of zero bytes, Name and Ext are ignored.
	Unused  bool
	Attr    uint8
	Time    uint16
	Date    uint16
	Cluster uint16
	Size    uint32
}

// Builder describes an image.
type Builder struct {
	Geometry Geometry
	// VolumeLBA is the sector the boot sector is placed at.
	VolumeLBA uint32
	// MBR writes a partition table at sector 0 with the first partition starting at PartitionLBA.
	MBR          bool
	PartitionLBA uint32
	// BadBootSignature writes 0x0000 instead of 0xAA55.
	BadBootSignature bool
	OEMName          string
	VolumeLabel      string
	VolumeID         uint32
	// Entries are placed from slot 0 on.
	Entries []Entry
	// DataSectors are appended zeroed after the root directory.
	DataSectors int
}

// New returns a Builder for an unpartitioned floppy image.
func New(entries ...Entry) *Builder {
	return &Builder{
		Geometry:    Floppy(),
		OEMName:     "MSWIN4.1",
		VolumeLabel: "NO NAME",
		VolumeID:    0x1234ABCD,
		Entries:     entries,
	}
}

// VolumeOffset is the byte offset of the boot sector.
func (b *Builder) VolumeOffset() int64 {
	return int64(b.VolumeLBA) * sectorSize
}

// RootDirectoryOffset is the byte offset of the root directory.
func (b *Builder) RootDirectoryOffset() int64 {
	g := b.Geometry
	return b.VolumeOffset() + sectorSize*(int64(g.ReservedSectors)+int64(g.TableCount)*int64(g.TableSize))
}

// Size is the length of the image in bytes.
func (b *Builder) Size() int64 {
	return b.RootDirectoryOffset() + 224*32 + int64(b.DataSectors)*sectorSize
}

// Bytes renders the image.
func (b *Builder) Bytes() []byte {
	img := make([]byte, b.Size())

	if b.MBR {
		putMBR(img, b.PartitionLBA)
	}

	boot := img[b.VolumeOffset():]
	b.putBootSector(boot)

	root := img[b.RootDirectoryOffset():]
	for i, e := range b.Entries {
		putEntry(root[i*32:], e)
	}

	return img
}

// WriteTo writes the image to path on fs.
func (b *Builder) WriteTo(fs afero.Fs, path string) error {
	return afero.WriteFile(fs, path, b.Bytes(), os.FileMode(0644))
}

func putMBR(img []byte, lba uint32) {
	p := img[0x1BE:]
	p[0] = 0x80
	p[4] = 0x06
	binary.LittleEndian.PutUint32(p[8:], lba)
	binary.LittleEndian.PutUint32(p[12:], 2880)

	img[510] = 0x55
	img[511] = 0xAA
}

func (b *Builder) putBootSector(s []byte) {
	g := b.Geometry

	copy(s[0:3], []byte{0xEB, 0x3C, 0x90})
	copy(s[3:11], pad(b.OEMName, 8))
	binary.LittleEndian.PutUint16(s[11:], g.BytesPerSector)
	s[13] = g.SectorsPerCluster
	binary.LittleEndian.PutUint16(s[14:], g.ReservedSectors)
	s[16] = g.TableCount
	binary.LittleEndian.PutUint16(s[17:], g.RootEntries)
	binary.LittleEndian.PutUint16(s[19:], g.TotalSectors16)
	s[21] = g.Media
	binary.LittleEndian.PutUint16(s[22:], g.TableSize)
	binary.LittleEndian.PutUint16(s[24:], 18)
	binary.LittleEndian.PutUint16(s[26:], 2)
	binary.LittleEndian.PutUint32(s[28:], b.VolumeLBA)
	binary.LittleEndian.PutUint32(s[32:], g.TotalSectors32)
	s[36] = 0x00
	s[38] = 0x29
	binary.LittleEndian.PutUint32(s[39:], b.VolumeID)
	copy(s[43:54], pad(b.VolumeLabel, 11))
	copy(s[54:62], pad("FAT16", 8))

	if !b.BadBootSignature {
		s[510] = 0x55
		s[511] = 0xAA
	}
}

func putEntry(s []byte, e Entry) {
	if e.Unused {
		return
	}

	copy(s[0:8], pad(e.Name, 8))
	copy(s[8:11], pad(e.Ext, 3))
	s[11] = e.Attr
	binary.LittleEndian.PutUint16(s[22:], e.Time)
	binary.LittleEndian.PutUint16(s[24:], e.Date)
	binary.LittleEndian.PutUint16(s[26:], e.Cluster)
	binary.LittleEndian.PutUint32(s[28:], e.Size)
}

func pad(s string, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	copy(b, s)
	return b
}
