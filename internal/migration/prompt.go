package migration

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdinPrompter asks yes/no questions on the terminal. Only an explicit
// "y"/"yes" counts as confirmation.
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdinPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *StdinPrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
