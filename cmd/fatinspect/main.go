// Command fatinspect prints the layout of a FAT16 disk image: the MBR in front of the volume,
// its boot sector and the entries of its root directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aligator/fatinspect"
	"github.com/aligator/fatinspect/report"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	all        bool
	partitions bool
	noEntries  bool
	skipChecks bool
}

func (o *options) registerFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.all, "all", "a", false, "print every field of the boot sector")
	fs.BoolVarP(&o.partitions, "partitions", "p", false, "list all entries of the MBR partition table")
	fs.BoolVar(&o.noEntries, "no-entries", false, "do not list the root directory")
	fs.BoolVar(&o.skipChecks, "skip-checks", false, "inspect volumes with zero sector or cluster sizes (offsets may be meaningless)")
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "fatinspect <image>",
		Short:        "Show the layout of a FAT16 disk image",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(fs, cmd.OutOrStdout(), args[0], opts)
		},
	}
	opts.registerFlags(cmd.Flags())

	return cmd
}

func run(fs afero.Fs, w io.Writer, path string, opts *options) error {
	result, err := fatinspect.Open(fs, path, fatinspect.Options{SkipChecks: opts.skipChecks})
	if err != nil {
		return errors.Wrapf(err, "could not inspect %s", path)
	}

	if err := report.Location(w, result.Location); err != nil {
		return errors.WithStack(err)
	}

	if opts.partitions {
		if err := report.Partitions(w, result.Location); err != nil {
			return errors.WithStack(err)
		}
	}

	printBootSector := report.BootSector
	if opts.all {
		printBootSector = report.BootSectorAll
	}
	if err := printBootSector(w, result.BootSector); err != nil {
		return errors.WithStack(err)
	}

	if opts.noEntries {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\nFiles in root directory:\n\n"); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(report.Entries(w, result.Entries))
}

func main() {
	cmd := newRootCmd(afero.NewReadOnlyFs(afero.NewOsFs()))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
