package tack

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// AppendRecord appends the contents of the pipe to the specified file as a
// single length-prefixed record, and closes the pipe after reading. The
// pipe's length is not known until it has been read completely, so the
// contents are buffered in memory before the 4-byte prefix and payload are
// written. Unlike the package-level AppendRecord, the file is created if
// it does not already exist. It returns the number of payload bytes
// written, or an error. If there is an error reading or writing, the
// pipe's error status is also set.
func (p *Pipe) AppendRecord(fileName string) (int64, error) {
	if p == nil || p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	data, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	out, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	defer out.Close()
	wrote, err := writeRecord(out, int64(len(data)), bytes.NewReader(data))
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	return wrote, nil
}

// AppendFile appends the contents of the pipe to the specified file, with
// no length prefix, and closes the pipe after reading. The file is created
// if it does not already exist. It returns the number of bytes
// successfully written, or an error. If there is an error reading or
// writing, the pipe's error status is also set.
func (p *Pipe) AppendFile(fileName string) (int64, error) {
	return p.writeOrAppendFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY)
}

// Bytes returns the contents of the pipe as a []byte, or an error, and
// closes the pipe after reading. If there is an error reading, the pipe's
// error status is also set.
func (p *Pipe) Bytes() ([]byte, error) {
	if p == nil || p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return nil, err
	}
	return res, nil
}

// String returns the contents of the pipe as a string, or an error, and
// closes the pipe after reading. If there is an error reading, the pipe's
// error status is also set.
func (p *Pipe) String() (string, error) {
	res, err := p.Bytes()
	if err != nil {
		return "", err
	}
	return string(res), nil
}

// Stdout writes the contents of the pipe to the program's standard output,
// and closes the pipe after reading. It returns the number of bytes
// successfully written, plus a non-nil error if the write failed or if
// there was an error reading from the pipe. If the pipe has error status,
// Stdout returns zero plus the existing error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil || p.Error() != nil {
		return 0, p.Error()
	}
	res, err := p.Bytes()
	if err != nil {
		return 0, err
	}
	if p.stdout == nil {
		return fmt.Print(string(res))
	}
	return p.stdout.Write(res)
}

// WriteFile writes the contents of the pipe to the specified file,
// truncating any existing contents, and closes the pipe after reading. It
// returns the number of bytes successfully written, or an error. If there
// is an error reading or writing, the pipe's error status is also set.
func (p *Pipe) WriteFile(fileName string) (int64, error) {
	return p.writeOrAppendFile(fileName, os.O_TRUNC|os.O_CREATE|os.O_WRONLY)
}

func (p *Pipe) writeOrAppendFile(fileName string, mode int) (int64, error) {
	if p == nil || p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	out, err := os.OpenFile(fileName, mode, 0o644)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	defer out.Close()
	wrote, err := io.Copy(out, p.Reader)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	return wrote, nil
}
