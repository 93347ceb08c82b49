package ctl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Greg8128/Stim/config"
	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/lexer"
	"github.com/Greg8128/Stim/record"
	"github.com/Greg8128/Stim/simdtable"
	"github.com/Greg8128/Stim/toml"
)

// DumpCommand decodes a measurement-record file in any of the streamable
// formats and writes it back out as 01 text, one shot per line. It exists
// to exercise the full reader stack end to end for tests and bug reports;
// it is not a reimplementation of the simulator's own sampling pipeline.
type DumpCommand struct {
	*CmdIO

	Format       string
	M, D, L      uint64
	MaxShots     int
	Path         string
	DefaultsPath string
	Timeout      toml.Duration
}

// NewDumpCommand returns the "dump" cobra subcommand.
func NewDumpCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	dc := &DumpCommand{
		CmdIO:    NewCmdIO(stdin, stdout, stderr),
		Format:   "01",
		MaxShots: 10000,
	}

	cc := &cobra.Command{
		Use:   "dump [path]",
		Short: "Decode a measurement-record file and print it as 01 text.",
		Long: `dump reads a measurement-record file in one of the streamable
formats (01, B8, HITS, R8, DETS) and writes it back out as 01 text, one
shot per line. Pass "-" or omit the path to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				dc.Path = args[0]
			}
			if dc.DefaultsPath != "" {
				cfg, err := config.Load(dc.DefaultsPath)
				if err != nil {
					return err
				}
				dc.applyConfigDefaults(cmd.Flags(), cfg)
			}
			return dc.Run(cmd.Context())
		},
	}

	flags := cc.Flags()
	flags.StringVarP(&dc.Format, "format", "f", dc.Format, "Input record format: 01, B8, HITS, R8, or DETS.")
	flags.Uint64VarP(&dc.M, "m", "m", dc.M, "Number of measurement bits per shot.")
	flags.Uint64VarP(&dc.D, "d", "d", dc.D, "Number of detection-event bits per shot (DETS only).")
	flags.Uint64VarP(&dc.L, "l", "l", dc.L, "Number of logical-observable bits per shot (DETS only).")
	flags.IntVar(&dc.MaxShots, "max-shots", dc.MaxShots, "Maximum number of shots to decode.")
	flags.StringVar(&dc.DefaultsPath, "defaults", "", "Optional TOML file of defaults (see the config package), applied to any flag not given explicitly.")
	return cc
}

// applyConfigDefaults overlays cfg onto any flag the caller didn't set
// explicitly, the same "skip any flag whose Changed is set" layering
// setAllConfig uses for the root command's own config file.
func (dc *DumpCommand) applyConfigDefaults(flags *pflag.FlagSet, cfg *config.Config) {
	if !flags.Changed("format") {
		dc.Format = cfg.DefaultFormat
	}
	if !flags.Changed("m") {
		dc.M = cfg.DefaultM
	}
	if !flags.Changed("d") {
		dc.D = cfg.DefaultD
	}
	if !flags.Changed("l") {
		dc.L = cfg.DefaultL
	}
	if !flags.Changed("max-shots") {
		dc.MaxShots = cfg.MaxShots
	}
	// Verbosity and the decode timeout have no corresponding flags (there
	// is nothing for a caller to have already "changed"), so a defaults
	// file always governs them.
	dc.SetVerbosity(cfg.Verbosity)
	dc.Timeout = cfg.Timeout
}

// Run decodes the configured input and writes 01 text to Stdout. If
// dc.Timeout is set (only a --defaults file can set it; there is no
// --timeout flag), decoding stops once it elapses.
func (dc *DumpCommand) Run(ctx context.Context) error {
	if dc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(dc.Timeout))
		defer cancel()
	}

	format, ok := record.ParseFormat(strings.ToUpper(dc.Format))
	if !ok {
		return errors.New(errors.ErrConfiguration, fmt.Sprintf("unrecognized format %q", dc.Format))
	}

	in := dc.Stdin
	if dc.Path != "" && dc.Path != "-" {
		f, err := os.Open(dc.Path)
		if err != nil {
			return errors.Wrap(err, "opening input file")
		}
		defer f.Close()
		in = f
	}

	src := lexer.NewByteSource(in)
	reader, err := record.NewFactory(src, format, dc.M, dc.D, dc.L)
	if err != nil {
		return err
	}

	width := int(dc.M + dc.D + dc.L)
	table := simdtable.NewTable(dc.MaxShots, width)
	n, err := record.ReadRecordsInto(ctx, reader, table, true, dc.MaxShots, dc.Logger())
	if err != nil {
		return err
	}
	dc.Logger().Infof("decoded %d shots", n)

	w := bufio.NewWriter(dc.Stdout)
	defer w.Flush()
	for shot := 0; shot < n; shot++ {
		for col := 0; col < table.Cols(); col++ {
			if table.Get(shot, col) {
				w.WriteByte('1')
			} else {
				w.WriteByte('0')
			}
		}
		w.WriteByte('\n')
	}
	return nil
}
