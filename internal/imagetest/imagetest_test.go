package imagetest

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/spf13/afero"
)

func TestBuilder_Layout(t *testing.T) {
	tests := []struct {
		name         string
		builder      func() *Builder
		wantVolumeAt int64
		wantRootAt   int64
		wantSize     int64
	}{
		{
			name:         "floppy",
			builder:      func() *Builder { return New() },
			wantVolumeAt: 0,
			wantRootAt:   9728,
			wantSize:     9728 + 224*32,
		},
		{
			name: "partitioned with data",
			builder: func() *Builder {
				b := New()
				b.MBR = true
				b.VolumeLBA = 100
				b.PartitionLBA = 100
				b.DataSectors = 2
				return b
			},
			wantVolumeAt: 51200,
			wantRootAt:   51200 + 9728,
			wantSize:     51200 + 9728 + 224*32 + 1024,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.builder()
			if got := b.VolumeOffset(); got != tt.wantVolumeAt {
				t.Errorf("Builder.VolumeOffset() = %v, want %v", got, tt.wantVolumeAt)
			}
			if got := b.RootDirectoryOffset(); got != tt.wantRootAt {
				t.Errorf("Builder.RootDirectoryOffset() = %v, want %v", got, tt.wantRootAt)
			}
			if got := int64(len(b.Bytes())); got != tt.wantSize {
				t.Errorf("len(Builder.Bytes()) = %v, want %v", got, tt.wantSize)
			}
		})
	}
}

func TestBuilder_Bytes(t *testing.T) {
	b := New(Entry{Name: "README", Ext: "TXT", Attr: 0x20, Cluster: 3, Size: 7}, Entry{Unused: true})
	b.MBR = true
	b.VolumeLBA = 1
	b.PartitionLBA = 1
	img := b.Bytes()

	if img[510] != 0x55 || img[511] != 0xAA {
		t.Errorf("MBR signature = %#x %#x", img[510], img[511])
	}
	if lba := binary.LittleEndian.Uint32(img[0x1BE+8:]); lba != 1 {
		t.Errorf("partition LBA = %v, want 1", lba)
	}

	boot := img[512:]
	if got := binary.LittleEndian.Uint16(boot[11:]); got != 512 {
		t.Errorf("bytes per sector = %v, want 512", got)
	}
	if got := binary.LittleEndian.Uint16(boot[510:]); got != 0xAA55 {
		t.Errorf("boot signature = %#x, want 0xAA55", got)
	}

	root := img[b.RootDirectoryOffset():]
	if !bytes.Equal(root[:11], []byte("README  TXT")) {
		t.Errorf("entry name = %q, want %q", root[:11], "README  TXT")
	}
	if !bytes.Equal(root[32:64], make([]byte, 32)) {
		t.Errorf("unused entry = %v, want zeros", root[32:64])
	}
}

func TestBuilder_WriteTo(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New()

	if err := b.WriteTo(fs, "image.img"); err != nil {
		t.Fatalf("Builder.WriteTo() error = %v", err)
	}

	got, err := afero.ReadFile(fs, "image.img")
	if err != nil {
		t.Fatalf("afero.ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, b.Bytes()) {
		t.Errorf("Builder.WriteTo() wrote different bytes than Builder.Bytes()")
	}
}
