package fatinspect

import "strings"

// Attributes is the raw attribute byte of a directory entry.
type Attributes uint8

// Attribute bits, low to high.
const (
	AttrReadOnly Attributes = 1 << iota
	AttrHidden
	AttrSystem
	AttrVolumeID
	AttrDirectory
	AttrArchive
	AttrDevice
	AttrUnused
)

// Has reports whether all bits of flag are set.
func (a Attributes) Has(flag Attributes) bool {
	return a&flag == flag
}

// Decode splits the attribute byte into its flags.
func (a Attributes) Decode() FileAttributes {
	return FileAttributes{
		ReadOnly:  a.Has(AttrReadOnly),
		Hidden:    a.Has(AttrHidden),
		System:    a.Has(AttrSystem),
		VolumeID:  a.Has(AttrVolumeID),
		Directory: a.Has(AttrDirectory),
		Archive:   a.Has(AttrArchive),
		Device:    a.Has(AttrDevice),
		Unused:    a.Has(AttrUnused),
	}
}

// FileAttributes are the decoded flags of an attribute byte.
type FileAttributes struct {
	ReadOnly  bool
	Hidden    bool
	System    bool
	VolumeID  bool
	Directory bool
	Archive   bool
	Device    bool
	Unused    bool
}

// Names lists the set flags, low bit first.
func (f FileAttributes) Names() []string {
	var names []string
	for _, flag := range []struct {
		set  bool
		name string
	}{
		{f.ReadOnly, "Read only"},
		{f.Hidden, "Hidden"},
		{f.System, "System"},
		{f.VolumeID, "Volume ID"},
		{f.Directory, "Directory"},
		{f.Archive, "Archive"},
		{f.Device, "Device"},
		{f.Unused, "Unused"},
	} {
		if flag.set {
			names = append(names, flag.name)
		}
	}
	return names
}

func (f FileAttributes) String() string {
	return strings.Join(f.Names(), ", ")
}

const (
	// markerEnd stops the scan of the root directory.
	// Note that FAT usually treats 0xE5 as a deleted entry and 0x00 as the end.
	markerEnd = 0xE5
	// markerSkip is a never used slot which is skipped.
	markerSkip = 0x00
)

// Entry is a decoded live root directory entry.
type Entry struct {
	Raw DirEntry
	// Slot is the index inside the root directory.
	Slot        int
	Attributes  FileAttributes
	IsDirectory bool
	// FileSize is only meaningful if IsDirectory is false.
	FileSize     uint32
	LastWrite    DateTime
	FirstCluster uint16
	// FirstSector is the first sector of the entry's data relative to the volume start.
	FirstSector int64
}

// DecodeEntry decodes a single live entry using the geometry of bs.
func DecodeEntry(raw DirEntry, bs BootSector) Entry {
	attrs := raw.Attributes.Decode()
	return Entry{
		Raw:          raw,
		Attributes:   attrs,
		IsDirectory:  attrs.Directory,
		FileSize:     raw.FileSize,
		LastWrite:    DecodeDateTime(raw.WriteDate, raw.WriteTime),
		FirstCluster: raw.FirstCluster,
		FirstSector:  bs.FirstSector(raw.FirstCluster),
	}
}

// DecodeEntries scans the root directory in on-disk order and decodes every live entry.
// Slots starting with 0x00 are skipped, the first slot starting with 0xE5 ends the scan.
func DecodeEntries(dir *RootDirectory, bs BootSector) []Entry {
	entries := make([]Entry, 0)
	for i, raw := range dir {
		if raw.Name[0] == markerEnd {
			break
		}
		if raw.Name[0] == markerSkip {
			continue
		}

		e := DecodeEntry(raw, bs)
		e.Slot = i
		entries = append(entries, e)
	}
	return entries
}
