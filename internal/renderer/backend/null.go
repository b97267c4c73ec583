package backend

import (
	"strings"

	"github.com/dshills/replterm/internal/renderer/core"
)

// NullBackend is an in-memory backend for tests. It records every cell and
// replays queued events; it is not safe for concurrent use.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	resizeHandler func(width, height int)
	events        []Event
	shows         int
	shutdown      bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
	}
}

func (b *NullBackend) Init() error {
	b.cells = newGrid(b.width, b.height)
	return nil
}

func (b *NullBackend) Shutdown() { b.shutdown = true }

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) OnResize(callback func(width, height int)) {
	b.resizeHandler = callback
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	b.cells = newGrid(b.width, b.height)
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() (Event, bool) {
	if len(b.events) == 0 {
		return Event{}, false
	}
	ev := b.events[0]
	b.events = b.events[1:]
	if ev.Type == EventResize {
		b.resize(ev.Width, ev.Height)
	}
	return ev, true
}

func (b *NullBackend) PostEvent(event Event) {
	b.events = append(b.events, event)
}

// Row returns the runes of row y as a string.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int { return b.shows }

// IsShutdown reports whether Shutdown was called.
func (b *NullBackend) IsShutdown() bool { return b.shutdown }

// Resize queues a resize event, as a terminal would on SIGWINCH.
func (b *NullBackend) Resize(width, height int) {
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

func (b *NullBackend) resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = newGrid(width, height)
	if b.resizeHandler != nil {
		b.resizeHandler(width, height)
	}
}

func newGrid(width, height int) [][]core.Cell {
	cells := make([][]core.Cell, height)
	for i := range cells {
		cells[i] = make([]core.Cell, width)
		for j := range cells[i] {
			cells[i][j] = core.EmptyCell()
		}
	}
	return cells
}
