package tack

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// Exec runs an external command and returns a pipe containing its combined
// output. If the command had a non-zero exit status, the pipe's error
// status will also be set to the string "exit status X", where X is the
// integer exit status.
func Exec(cmdLine string) *Pipe {
	return NewPipe().Exec(cmdLine)
}

// File returns a pipe that reads from the specified file. This is useful
// for starting pipelines. If there is an error opening the file, the
// pipe's error status will be set.
func File(name string) *Pipe {
	p := NewPipe()
	f, err := os.Open(name)
	if err != nil {
		return p.WithError(err)
	}
	return p.WithReader(f)
}

// Stdin returns a pipe which reads from the program's standard input.
func Stdin() *Pipe {
	return NewPipe().WithReader(os.Stdin)
}

// Exec runs an external command, sending it the contents of the pipe as
// input, and returns a pipe containing the command's combined output. The
// command line is split shell-style, so quoted arguments containing spaces
// are handled. If the command had a non-zero exit status, the pipe's error
// status will also be set to the string "exit status X", where X is the
// integer exit status.
func (p *Pipe) Exec(cmdLine string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	args, err := shell.Fields(cmdLine, nil)
	if err != nil {
		return p.WithError(fmt.Errorf("parsing command line %q: %w", cmdLine, err))
	}
	if len(args) == 0 {
		return p.WithError(fmt.Errorf("empty command line %q", cmdLine))
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = p.Reader
	output, err := cmd.CombinedOutput()
	q := NewPipe().WithReader(bytes.NewReader(output))
	if err != nil {
		q.SetError(err)
	}
	return q
}
