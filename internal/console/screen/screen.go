package screen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"
)

const (
	ModeAuto    = "auto"
	ModeANSI    = "ansi"
	ModeCommand = "command"
	ModeOff     = "off"

	// cursor home, then erase the whole display
	ansiClear = "\x1b[H\x1b[2J"
)

var (
	ErrUnknownMode = errors.New("unknown clear-screen mode")
	ErrUnavailable = errors.New("clear command is not available")
)

// Clearer wipes the display before the board is redrawn.
type Clearer interface {
	Clear() error
}

// New - returns the Clearer for mode. In auto mode the screen is cleared only when out is a terminal.
func New(mode string, out io.Writer) (Clearer, error) {
	switch mode {
	case ModeAuto:
		if !isTerminal(out) {
			return Nop{}, nil
		}
		if runtime.GOOS == "windows" {
			return NewCommand(out), nil
		}
		return NewANSI(out), nil
	case ModeANSI:
		return NewANSI(out), nil
	case ModeCommand:
		return NewCommand(out), nil
	case ModeOff:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// ANSI clears with an escape sequence written to the output.
type ANSI struct {
	out io.Writer
}

func NewANSI(out io.Writer) *ANSI {
	return &ANSI{out: out}
}

func (that *ANSI) Clear() error {
	if _, err := io.WriteString(that.out, ansiClear); err != nil {
		return fmt.Errorf("failed to write clear sequence: %w", err)
	}

	return nil
}

// Command clears by running the platform's clear command.
type Command struct {
	out  io.Writer
	name string
	args []string
}

func NewCommand(out io.Writer) *Command {
	return &Command{
		out:  out,
		name: clearCommand[0],
		args: clearCommand[1:],
	}
}

func (that *Command) Clear() error {
	path, err := exec.LookPath(that.name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, that.name)
	}

	cmd := exec.Command(path, that.args...)
	cmd.Stdout = that.out

	if err = cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", that.name, err)
	}

	return nil
}

// Nop leaves the screen as it is.
type Nop struct{}

func (Nop) Clear() error {
	return nil
}
