package flag

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"
)

const (
	DefaultInput  = "dist.txt"
	DefaultPieces = 3

	maxPieces = 8
)

type Flags struct {
	Input string

	// solve mode prints a table in the dist.txt format
	Solve       bool
	Pieces      int
	Workers     int
	Path        bool
	Unreachable bool

	Debug   bool
	LogFile string
}

func Parse() *Flags {
	flags, err := parse(pflag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(2)
	}

	return flags
}

func parse(fs *pflag.FlagSet, args []string) (*Flags, error) {
	var flags Flags

	fs.StringVarP(&flags.Input, "input", "i", DefaultInput, "Distance table to read boards from")

	fs.BoolVar(&flags.Solve, "solve", false, "Generate positions and print the distance table instead of reading one")
	fs.IntVar(&flags.Pieces, "pieces", DefaultPieces, "Max number of player0 pieces in generated positions")
	fs.IntVar(&flags.Workers, "workers", runtime.NumCPU(), "Number of concurrent solver workers")
	fs.BoolVar(&flags.Path, "path", false, "Print the winning line from the deepest solved position (with --solve)")
	fs.BoolVar(&flags.Unreachable, "unreachable", false, "Print positions without dist0 (with --solve)")

	fs.BoolVar(&flags.Debug, "debug", false, "Print debug log")
	fs.StringVar(&flags.LogFile, "log-file", "", "Also write JSON logs to this rotated file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := flags.check(); err != nil {
		return nil, err
	}

	return &flags, nil
}

func (f *Flags) checkInput() error {
	if f.Solve || f.Input != "" {
		return nil
	}

	return fmt.Errorf("input path is empty")
}

func (f *Flags) checkPieces() error {
	if 0 <= f.Pieces && f.Pieces <= maxPieces {
		return nil
	}

	return fmt.Errorf("pieces(%d) is invalid, should be 0 <= PIECES <= %d", f.Pieces, maxPieces)
}

func (f *Flags) checkWorkers() error {
	if f.Workers > 0 {
		return nil
	}

	return fmt.Errorf("workers(%d) is invalid, should be > 0", f.Workers)
}

func (f *Flags) checkSolveOnly() error {
	if f.Solve || (!f.Path && !f.Unreachable) {
		return nil
	}

	return fmt.Errorf("--path and --unreachable require --solve")
}

func (f *Flags) check() error {
	type checker func() error
	checkers := []checker{
		f.checkInput,
		f.checkPieces,
		f.checkWorkers,
		f.checkSolveOnly,
	}

	for _, c := range checkers {
		if err := c(); err != nil {
			return err
		}
	}

	return nil
}
