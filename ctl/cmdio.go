package ctl

import (
	"io"

	"github.com/Greg8128/Stim/logger"
)

// CmdIO bundles the standard streams and a logger shared by every ctl
// command, the same grouping cmd.go's CmdIO gives pilosa's own commands.
type CmdIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger logger.Logger
}

// NewCmdIO wires stdin/stdout/stderr together with a standard logger
// writing to stderr.
func NewCmdIO(stdin io.Reader, stdout, stderr io.Writer) *CmdIO {
	return &CmdIO{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		logger: logger.NewStandardLogger(stderr),
	}
}

// Logger returns the command's logger.
func (c *CmdIO) Logger() logger.Logger { return c.logger }

// SetVerbosity replaces the command's logger with one writing to the
// same stderr at the given level, letting a config file's verbosity
// setting override the NewStandardLogger default NewCmdIO installs.
func (c *CmdIO) SetVerbosity(level int) {
	c.logger = logger.NewLeveledLogger(c.Stderr, level)
}
