// Command tack appends one file to another as a length-prefixed record:
// 4 bytes holding the size of the input file as a little-endian unsigned
// 32-bit integer, followed by the input file's contents.
//
// Usage:
//
//	tack <output_file> <input_file>
//
// The output file must already exist. On any failure the error is printed
// to standard error and tack exits with a non-zero status; note that a
// failure partway through writing can leave a truncated record at the end
// of the output file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitfield/tack"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "Usage: tack <output_file> <input_file>")
		return 2
	}
	_, err := tack.AppendRecord(args[0], args[1])
	if err != nil {
		fmt.Fprintln(stderr, "tack:", err)
		return 1
	}
	return 0
}
