package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a selection.
var ErrCancelled = errors.New("selection cancelled")

// Prompter reads answers from In and writes questions to Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	// AssumeYes answers every confirmation with yes without asking.
	AssumeYes bool
	// Interactive enables the arrow-key selector.
	Interactive bool

	reader *bufio.Reader
}

// New returns a Prompter on in and out. The interactive selector is enabled
// when both are terminals.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out, Interactive: isTerminal(in) && isTerminal(out)}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Prompter) buffered() *bufio.Reader {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	return p.reader
}

// Confirm asks a yes/no question. Anything but y or yes, including an empty
// answer or end of input, is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	if p.AssumeYes {
		return true, nil
	}

	fmt.Fprintf(p.Out, "? %s (y/N) ", question)
	line, err := p.buffered().ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.Out)
	}

	answer := strings.TrimSpace(strings.ToLower(line))
	return answer == "y" || answer == "yes", nil
}

// Select asks the user to pick one of items and returns its index.
func (p *Prompter) Select(prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to select for %q", prompt)
	}
	if p.Interactive {
		return runSelector(p.In, p.Out, prompt, items)
	}
	return selectFromList(p.buffered(), p.Out, prompt, items)
}

// selectFromList prints a numbered menu and reads the chosen number.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(items))
	}

	return num - 1, nil
}
