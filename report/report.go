// Package report renders the result of an inspection as text for a terminal.
package report

import (
	"fmt"
	"io"

	"github.com/aligator/fatinspect"
)

// printer remembers the first write error so callers only check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Location describes where the volume was found.
func Location(w io.Writer, loc fatinspect.Location) error {
	p := &printer{w: w}

	switch loc.Status {
	case fatinspect.Partitioned:
		p.printf("Valid MBR detected.\n")
		p.printf("Partition 1 starting LBA: %d\n", loc.StartLBA)
		p.printf("FAT16 Boot Sector offset: %d bytes\n", loc.Offset)
	case fatinspect.NoValidPartition:
		p.printf("No valid partition table. Assuming FAT16 Boot Sector at offset 0.\n")
	default:
		p.printf("No valid MBR signature found.\n")
	}

	return p.err
}

// Partitions lists the non empty entries of the partition table.
func Partitions(w io.Writer, loc fatinspect.Location) error {
	p := &printer{w: w}

	if loc.Status == fatinspect.NoMBR {
		return nil
	}

	for i, part := range loc.Partitions {
		if part.Empty() {
			continue
		}

		active := ""
		if part.Active() {
			active = " (active)"
		}
		p.printf("Partition %d: type 0x%02x, start LBA %d, %d sectors%s\n", i+1, part.Type, part.StartLBA, part.SectorCount, active)
	}

	return p.err
}

// BootSector prints the geometry of the volume.
func BootSector(w io.Writer, bs fatinspect.BootSector) error {
	p := &printer{w: w}

	p.printf("Sector size: %d\n", bs.BytesPerSector)
	p.printf("Cluster number: %d\n", bs.SectorsPerCluster)
	p.printf("Fat count: %d\n", bs.TableCount)
	p.printf("Fat size: %d\n", bs.TableSize16)
	p.printf("Entry count: %d\n", bs.RootEntryCount)
	p.printf("Root size: %d\n", bs.RootDirectorySectors())
	p.printf("Reserved sectors: %d\n", bs.ReservedSectorCount)
	signature(p, bs)

	return p.err
}

// BootSectorAll prints every field of the boot sector.
func BootSectorAll(w io.Writer, bs fatinspect.BootSector) error {
	p := &printer{w: w}

	p.printf("OEM Name: %s\n", bs.OEMNameString())
	p.printf("Bytes per sector: %d\n", bs.BytesPerSector)
	p.printf("Sectors per cluster: %d\n", bs.SectorsPerCluster)
	p.printf("Reserved sector count: %d\n", bs.ReservedSectorCount)
	p.printf("Table count: %d\n", bs.TableCount)
	p.printf("Root entry count: %d\n", bs.RootEntryCount)
	p.printf("Total sectors 16: %d\n", bs.TotalSectors16)
	p.printf("Media type: 0x%x\n", bs.MediaType)
	p.printf("Table size 16: %d\n", bs.TableSize16)
	p.printf("Sectors per track: %d\n", bs.SectorsPerTrack)
	p.printf("Head side count: %d\n", bs.HeadSideCount)
	p.printf("Hidden sector count: %d\n", bs.HiddenSectorCount)
	p.printf("Total sectors 32: %d\n", bs.TotalSectors32)
	p.printf("BIOS drive number: 0x%x\n", bs.BIOSDriveNumber)
	p.printf("Extended boot signature: 0x%x\n", bs.ExtBootSignature)
	p.printf("Volume id: %d\n", bs.VolumeID)
	p.printf("Volume label: %s\n", bs.VolumeLabelString())
	p.printf("FS type: %s\n", bs.FileSystemTypeString())
	p.printf("Boot sector signature: 0x%x\n", bs.Signature)
	signature(p, bs)

	return p.err
}

func signature(p *printer, bs fatinspect.BootSector) {
	if bs.SignatureValid() {
		p.printf("Boot sector signature is valid\n")
	} else {
		p.printf("Boot sector signature is invalid (expected 0xAA55)\n")
	}
}

// Entries prints every decoded root directory entry followed by an empty line.
func Entries(w io.Writer, entries []fatinspect.Entry) error {
	p := &printer{w: w}

	for _, e := range entries {
		p.printf("File: %s\n", e.Name())
		if e.IsDirectory {
			p.printf("Directory\n")
		} else {
			p.printf("Size: %d bytes%s\n", e.FileSize, humanSize(e.FileSize))
		}
		p.printf("Last write date and time: %s\n", e.LastWrite)
		for _, name := range e.Attributes.Names() {
			p.printf("%s\n", name)
		}
		p.printf("First logical cluster: %d\n", e.FirstCluster)
		p.printf("First sector: %d\n", e.FirstSector)
		p.printf("\n")
	}

	return p.err
}

// humanSize returns the size in KiB or MiB in parentheses, or nothing for small sizes.
func humanSize(size uint32) string {
	switch {
	case size > 1024*1024:
		return fmt.Sprintf(" (%.f MiB)", float64(size)/1024/1024)
	case size > 1024:
		return fmt.Sprintf(" (%.f KiB)", float64(size)/1024)
	default:
		return ""
	}
}
