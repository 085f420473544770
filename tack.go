// Package tack appends length-prefixed records to files. A record is a
// 4-byte little-endian unsigned integer holding the byte length of a
// payload, followed by the payload itself. This is the framing used by
// boot images and similar blobs that embed other files after a size
// marker.
//
// The simplest way to use tack is the package-level AppendRecord, which
// appends one file to another as a single record:
//
//	n, err := tack.AppendRecord("kernel.img", "initrd")
//
// Payloads can also come from other sources, via a Pipe:
//
//	tack.Exec("objcopy -Obinary kernel kernel.bin").AppendRecord("image")
//
// If any pipe operation results in an error, the pipe's Error method will
// return that error, and all further operations on that pipe are no-ops.
// A whole chain of operations can therefore be written without checking
// the error status at each stage.
package tack

import (
	"io"
	"os"
	"regexp"
	"strconv"
)

// Pipe represents a stream of payload bytes on their way to a record
// sink, with an associated ReadAutoCloser.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
	stdout io.Writer
}

// NewPipe returns a pointer to a new empty pipe.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		err:    nil,
		stdout: os.Stdout,
	}
}

// Close closes the pipe's associated reader. This is always safe to do,
// because pipes created from a non-closable source are wrapped so that a
// no-op Close is available.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil
// otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

var exitStatusPattern = regexp.MustCompile(`exit status (\d+)$`)

// ExitStatus returns the integer exit status of a previous command, if the
// pipe's error status is set, and if the error matches the pattern "exit
// status %d". Otherwise, it returns zero.
func (p *Pipe) ExitStatus() int {
	if p.Error() == nil {
		return 0
	}
	match := exitStatusPattern.FindStringSubmatch(p.Error().Error())
	if len(match) < 2 {
		return 0
	}
	status, err := strconv.Atoi(match[1])
	if err != nil {
		// This seems unlikely, but...
		return 0
	}
	return status
}

// Read reads up to len(b) bytes from the pipe into b. It returns the
// number of bytes read and any error encountered. At end of file, or on a
// nil pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to the specified error, closing
// the pipe's reader if the error is non-nil.
func (p *Pipe) SetError(err error) {
	if p != nil {
		if err != nil {
			p.Close()
		}
		p.err = err
	}
}

// WithError sets the pipe's error status to the specified error and
// returns the modified pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

// WithReader takes an io.Reader, and associates the pipe with that reader.
// If necessary, the reader will be automatically closed once it has been
// completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout takes an io.Writer, and associates the pipe's standard output
// with that writer, instead of the default os.Stdout. This is primarily
// useful for testing.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// ReadAutoCloser wraps an io.Reader, and closes it automatically, if
// closable, once it has been completely read.
type ReadAutoCloser struct {
	r io.Reader
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping the supplied Reader.
// If the Reader is not a Closer, it will be wrapped in a NopCloser to make
// it closable.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	if _, ok := r.(io.Closer); !ok {
		return ReadAutoCloser{io.NopCloser(r)}
	}
	return ReadAutoCloser{r}
}

// Read reads up to len(b) bytes from the wrapped reader into b. At end of
// file, Read returns 0, io.EOF, and the data source will be closed.
func (a ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the wrapped data source, and returns the result of that
// close operation.
func (a ReadAutoCloser) Close() error {
	if a.r == nil {
		return nil
	}
	return a.r.(io.Closer).Close()
}
