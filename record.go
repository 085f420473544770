package tack

import (
	"encoding/binary"
	"io"
	"os"
)

// AppendRecord appends the contents of the file inPath onto the end of the
// file outPath as a single length-prefixed record: 4 bytes holding the
// size of inPath as a little-endian unsigned 32-bit integer, followed by
// the file's contents. It returns the number of payload bytes appended,
// not counting the 4-byte prefix.
//
// The output file must already exist; AppendRecord never creates it. The
// size is taken from the file's metadata, and sizes of 4 GiB or more wrap
// modulo 2^32 in the prefix, while the payload is still written in full.
//
// There is no rollback on failure: if the payload write fails after the
// prefix has been written, the output file is left with a truncated
// record at its tail.
func AppendRecord(outPath, inPath string) (int64, error) {
	info, err := os.Stat(inPath)
	if err != nil {
		return 0, err
	}
	in, err := os.Open(inPath)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	out, err := os.OpenFile(outPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	defer out.Close()
	return writeRecord(out, info.Size(), in)
}

// writeRecord writes one record to w: 4 bytes holding size as a
// little-endian unsigned 32-bit integer, then the contents of r. The
// prefix always encodes size modulo 2^32; r is copied in full regardless.
// It returns the number of payload bytes written.
func writeRecord(w io.Writer, size int64, r io.Reader) (int64, error) {
	prefix := make([]byte, 4)
	binary.LittleEndian.PutUint32(prefix, uint32(size))
	_, err := w.Write(prefix)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, r)
}
