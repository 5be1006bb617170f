// Package console reads player input line by line from a terminal or any reader.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Reader prompts on out and reads lines from in.
//
// Lines are scanned by a single background goroutine so a blocked ReadLine
// can return as soon as its context is cancelled.
type Reader struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan line
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: in, out: out}
}

func (r *Reader) scan() {
	r.lines = make(chan line)
	go func() {
		defer close(r.lines)
		sc := bufio.NewScanner(r.in)
		for sc.Scan() {
			r.lines <- line{text: sc.Text()}
		}
		if err := sc.Err(); err != nil {
			r.lines <- line{err: fmt.Errorf("read input: %w", err)}
		}
	}()
}

// ReadLine writes prompt and blocks until a full line is available or ctx
// is done. It returns io.EOF when the input is closed.
func (r *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.once.Do(r.scan)
	fmt.Fprint(r.out, prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Confirm asks a yes/no question until it gets "y" or "n" (any case).
func (r *Reader) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		line, err := r.ReadLine(ctx, question+" (y/n) ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}
