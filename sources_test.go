package tack

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFile(t *testing.T) {
	t.Parallel()
	wantRaw, err := os.ReadFile("testdata/test.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := string(wantRaw)
	got, err := File("testdata/test.txt").String()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestFileWithNonexistentFile(t *testing.T) {
	t.Parallel()
	p := File("testdata/nonexistent.txt")
	if p.Error() == nil {
		t.Fatal("want error status opening nonexistent file, got nil")
	}
	if !errors.Is(p.Error(), fs.ErrNotExist) {
		t.Errorf("want fs.ErrNotExist, got %v", p.Error())
	}
}

func TestEcho(t *testing.T) {
	t.Parallel()
	want := "Hello, world."
	got, err := Echo(want).String()
	if err != nil {
		t.Error(err)
	}
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestExec(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		command           string
		errExpected       bool
		wantOutputContain string
	}{
		{
			command:           "doesntexist",
			errExpected:       true,
			wantOutputContain: "",
		},
		{
			command:           "go",
			errExpected:       true,
			wantOutputContain: "Usage",
		},
		{
			command:           "go help",
			errExpected:       false,
			wantOutputContain: "Usage",
		},
		{
			command:           `echo "hello world"`,
			errExpected:       false,
			wantOutputContain: "hello world",
		},
		{
			command:           `echo "unbalanced quote`,
			errExpected:       true,
			wantOutputContain: "",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.command, func(t *testing.T) {
			got, err := Exec(tc.command).String()
			if tc.errExpected != (err != nil) {
				t.Fatalf("unexpected error value: %v", err)
			}
			if err == nil && !strings.Contains(got, tc.wantOutputContain) {
				t.Fatalf("want output %q to contain %q", got, tc.wantOutputContain)
			}
		})
	}
}

func TestExecWithStdinFromPipe(t *testing.T) {
	t.Parallel()
	want := "hello"
	got, err := Echo(want).Exec("cat").String()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestExecWithNonzeroExitStatus(t *testing.T) {
	t.Parallel()
	p := Exec("go")
	p.String() // ignoring result; we want the error status
	if got := p.ExitStatus(); got != 2 {
		t.Errorf("want exit status 2, got %d", got)
	}
}
