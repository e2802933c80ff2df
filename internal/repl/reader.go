package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/samber/lo"
)

// LineReader yields one line of input per Prompt call and io.EOF at the end.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewLineReader uses line editing when in is a terminal and plain
// buffered reading otherwise.
func NewLineReader(in *os.File, out io.Writer) LineReader {
	if IsInteractive(in) {
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		state.SetCompleter(completeCommand)
		return &linerReader{state: state}
	}
	return NewScanReader(in, out)
}

// completeCommand offers the command spellings that extend line.
func completeCommand(line string) []string {
	if !strings.HasPrefix(line, ":") {
		return nil
	}
	return lo.Filter(CommandNames(), func(name string, _ int) bool {
		return strings.HasPrefix(name, line)
	})
}

type linerReader struct {
	state *liner.State
}

func (r *linerReader) Prompt(prompt string) (string, error) {
	return r.state.Prompt(prompt)
}

func (r *linerReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

func (r *linerReader) Close() error {
	return r.state.Close()
}

// ScanReader reads lines from any io.Reader. History is not kept.
type ScanReader struct {
	scanner *bufio.Scanner
	echo    io.Writer
}

// NewScanReader reads from in. Prompts are written to echo unless it is nil.
func NewScanReader(in io.Reader, echo io.Writer) *ScanReader {
	return &ScanReader{scanner: bufio.NewScanner(in), echo: echo}
}

func (r *ScanReader) Prompt(prompt string) (string, error) {
	if r.echo != nil {
		fmt.Fprint(r.echo, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *ScanReader) AppendHistory(string) {}

func (r *ScanReader) Close() error { return nil }
