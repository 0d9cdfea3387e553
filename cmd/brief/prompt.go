package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// prompter asks questions on out and reads answers from in, one per line.
// Lines are read by a single background goroutine so a blocked read never
// holds up cancellation.
type prompter struct {
	in  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan readResult
}

type readResult struct {
	line string
	err  error
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan readResult),
	}
}

func (p *prompter) readLoop() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// ask prints question and returns the trimmed answer. io.EOF is returned
// only when the input ends before anything was typed; ctx.Err() is returned
// if ctx is done first.
func (p *prompter) ask(ctx context.Context, question string) (string, error) {
	fmt.Fprint(p.out, question)
	p.once.Do(func() { go p.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if r.err != nil && (r.err != io.EOF || r.line == "") {
			return "", r.err
		}
		return strings.TrimSpace(r.line), nil
	}
}

// confirm asks a y/n question. Anything other than a yes is a no.
func (p *prompter) confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ask(ctx, question)
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}

// parseSaveFlag maps the -save value to (save, decided).
func parseSaveFlag(v string) (bool, bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return false, false, nil
	case "y", "yes", "true", "1":
		return true, true, nil
	case "n", "no", "false", "0":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("invalid -save value %q: want yes or no", v)
	}
}
