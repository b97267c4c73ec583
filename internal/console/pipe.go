package console

import (
	"io"
	"strings"
	"sync"
)

// pipe is an unbounded in-memory byte queue. Writes never block; Read
// blocks until data arrives or the pipe is closed; Drain takes everything
// buffered without blocking. All methods are safe for concurrent use.
type pipe struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []byte
	closed bool
}

func newPipe() *pipe {
	p := &pipe{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Write appends b. It returns io.ErrClosedPipe after Close.
func (p *pipe) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, io.ErrClosedPipe
	}
	p.buf = append(p.buf, b...)
	p.cond.Broadcast()
	return len(b), nil
}

// WriteString appends s.
func (p *pipe) WriteString(s string) (int, error) {
	return p.Write([]byte(s))
}

// Read blocks until data is available. After Close it drains what is left
// and then returns io.EOF.
func (p *pipe) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.buf) == 0 && !p.closed {
		p.cond.Wait()
	}
	if len(p.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(b, p.buf)
	p.buf = p.buf[n:]
	return n, nil
}

// Drain returns and clears everything buffered.
func (p *pipe) Drain() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.buf) == 0 {
		return ""
	}
	s := string(p.buf)
	p.buf = nil
	return s
}

// Close wakes blocked readers. Closing twice is a no-op.
func (p *pipe) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.cond.Broadcast()
	return nil
}

// splitLines splits drained text into scrollback lines. Carriage returns
// are dropped and a trailing newline does not produce an empty line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
