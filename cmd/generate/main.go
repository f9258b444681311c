package main

import (
	"path/filepath"

	"github.com/aligator/fatinspect/internal/imagetest"
	"github.com/spf13/afero"
)

// main for writing the sample images. Can be executed using 'go generate' from the project root.
func main() {
	dest := "testdata"
	fs := afero.NewOsFs()

	if err := fs.MkdirAll(dest, 0755); err != nil {
		panic(err)
	}

	entries := []imagetest.Entry{
		{Name: "README", Ext: "TXT", Attr: 0x20, Time: 0x6A00, Date: 0x2B21, Cluster: 3, Size: 1234},
		{Name: "DOCS", Attr: 0x10, Time: 41936, Date: 20890, Cluster: 5},
		{Name: "IO", Ext: "SYS", Attr: 0x27, Time: 0x5401, Date: 0x0021, Cluster: 6, Size: 40566},
		{Unused: true},
		{Name: "NOTES", Ext: "MD", Attr: 0x20, Time: 0x5401, Date: 0xFC46, Cluster: 16, Size: 10},
		{Name: "\xe5ELETED", Ext: "TXT", Cluster: 20, Size: 1},
		{Name: "HIDDEN", Ext: "TXT", Cluster: 21, Size: 1},
	}

	floppy := imagetest.New(entries...)
	floppy.DataSectors = 64

	partitioned := imagetest.New(entries...)
	partitioned.MBR = true
	partitioned.VolumeLBA = 100
	partitioned.PartitionLBA = 100
	partitioned.DataSectors = 64

	images := map[string]*imagetest.Builder{
		"fat16.img":     floppy,
		"fat16_mbr.img": partitioned,
	}

	for name, img := range images {
		if err := img.WriteTo(fs, filepath.Join(dest, name)); err != nil {
			panic(err)
		}
	}
}
