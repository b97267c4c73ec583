package console

import (
	"github.com/dshills/replterm/internal/owner"
	"github.com/dshills/replterm/internal/renderer/dirty"
)

// State is the editing, history and scrollback state of the console.
//
// History is most-recent-first. Entry 0 is the line being composed; the
// history index selects the entry being edited. Scroll is the index of the
// scrollback line shown on the top output row.
type State struct {
	width, height int

	history   [][]rune
	histIndex int
	cursor    int
	visible   int
	overwrite bool

	scrollback []string
	scroll     int
	autoscroll bool

	status string

	historyLimit    int
	scrollbackLimit int

	dirty *dirty.Tracker
	guard *owner.Guard
}

// NewState creates the state for a width x height screen.
func NewState(width, height int) *State {
	return &State{
		width:      width,
		height:     height,
		history:    [][]rune{nil},
		autoscroll: true,
		dirty:      dirty.NewTracker(),
		guard:      owner.Named("console.State"),
	}
}

// SetLimits sets the retention limits. Zero means unbounded. Existing
// entries beyond the new limits are evicted.
func (s *State) SetLimits(history, scrollback int) {
	defer s.guard.Enter("SetLimits")()

	s.historyLimit = max(0, history)
	s.scrollbackLimit = max(0, scrollback)
	s.evictHistory()
	s.evictScrollback()
}

// SetSize updates the screen size and marks everything dirty.
func (s *State) SetSize(width, height int) {
	defer s.guard.Enter("SetSize")()

	s.width, s.height = width, height
	s.clampVisible()
	s.dirty.MarkAll()
}

// Size returns the screen size.
func (s *State) Size() (width, height int) { return s.width, s.height }

// outputRows is the height of the output pane.
func (s *State) outputRows() int {
	return max(0, s.height-2)
}

func (s *State) current() []rune {
	return s.history[s.histIndex]
}

// Input returns the entry being edited.
func (s *State) Input() string { return string(s.current()) }

// Cursor returns the cursor offset within the entry.
func (s *State) Cursor() int { return s.cursor }

// Visible returns the offset of the first visible input rune.
func (s *State) Visible() int { return s.visible }

// HistoryIndex returns the index of the entry being edited.
func (s *State) HistoryIndex() int { return s.histIndex }

// History returns the history entries, most recent first.
func (s *State) History() []string {
	out := make([]string, len(s.history))
	for i, h := range s.history {
		out[i] = string(h)
	}
	return out
}

// Scrollback returns a copy of the scrollback lines.
func (s *State) Scrollback() []string {
	out := make([]string, len(s.scrollback))
	copy(out, s.scrollback)
	return out
}

// Scroll returns the index of the top visible scrollback line.
func (s *State) Scroll() int { return s.scroll }

// Autoscroll reports whether the view follows new output.
func (s *State) Autoscroll() bool { return s.autoscroll }

// Overwrite reports whether typed runes replace the rune under the cursor.
func (s *State) Overwrite() bool { return s.overwrite }

// Status returns the status line text.
func (s *State) Status() string { return s.status }

// SetStatus replaces the status line text.
func (s *State) SetStatus(status string) {
	defer s.guard.Enter("SetStatus")()

	s.status = status
	s.dirty.Mark(dirty.Status)
}

// Dirty returns the pending redraw regions without clearing them.
func (s *State) Dirty() dirty.Region { return s.dirty.Pending() }

// scrollLeft shifts the visible window left when the cursor reaches the
// cell next to the left edge.
func (s *State) scrollLeft() {
	if s.cursor-s.visible == 1 {
		s.visible = max(0, s.visible-s.width/4)
	}
}

// scrollRight shifts the visible window right when the cursor reaches two
// cells from the right edge.
func (s *State) scrollRight() {
	if s.cursor-s.visible == s.width-2 {
		s.visible += s.width / 4
	}
}

// clampVisible keeps the cursor inside the visible window after jumps that
// bypass the single-step rules, such as pastes and resizes.
func (s *State) clampVisible() {
	if s.cursor < s.visible {
		s.visible = s.cursor
	}
	if span := s.width - 2; span > 0 && s.cursor-s.visible > span {
		s.visible = s.cursor - span
	}
	if s.visible < 0 {
		s.visible = 0
	}
}

// Insert types r at the cursor, replacing the rune under it in overwrite
// mode.
func (s *State) Insert(r rune) {
	defer s.guard.Enter("Insert")()
	s.insert(r)
}

func (s *State) insert(r rune) {
	cur := s.current()
	if s.overwrite && s.cursor < len(cur) {
		cur[s.cursor] = r
	} else {
		cur = append(cur, 0)
		copy(cur[s.cursor+1:], cur[s.cursor:])
		cur[s.cursor] = r
		s.history[s.histIndex] = cur
	}
	s.cursor++
	s.scrollRight()
	s.clampVisible()
	s.dirty.Mark(dirty.Input)
}

// InsertText types every rune of text.
func (s *State) InsertText(text string) {
	defer s.guard.Enter("InsertText")()
	for _, r := range text {
		s.insert(r)
	}
}

// Backspace deletes the rune before the cursor.
func (s *State) Backspace() {
	defer s.guard.Enter("Backspace")()

	if s.cursor == 0 {
		return
	}
	cur := s.current()
	s.cursor--
	s.history[s.histIndex] = append(cur[:s.cursor], cur[s.cursor+1:]...)
	s.scrollLeft()
	s.clampVisible()
	s.dirty.Mark(dirty.Input)
}

// Delete deletes the rune under the cursor.
func (s *State) Delete() {
	defer s.guard.Enter("Delete")()

	cur := s.current()
	if s.cursor >= len(cur) {
		return
	}
	s.history[s.histIndex] = append(cur[:s.cursor], cur[s.cursor+1:]...)
	s.dirty.Mark(dirty.Input)
}

// ToggleOverwrite switches between insert and overwrite mode.
func (s *State) ToggleOverwrite() {
	defer s.guard.Enter("ToggleOverwrite")()

	s.overwrite = !s.overwrite
	s.dirty.Mark(dirty.Input)
}

// Left moves the cursor one rune left.
func (s *State) Left() {
	defer s.guard.Enter("Left")()

	if s.cursor > 0 {
		s.cursor--
	}
	s.scrollLeft()
	s.clampVisible()
	s.dirty.Mark(dirty.Input)
}

// Right moves the cursor one rune right.
func (s *State) Right() {
	defer s.guard.Enter("Right")()

	if s.cursor < len(s.current()) {
		s.cursor++
	}
	s.scrollRight()
	s.clampVisible()
	s.dirty.Mark(dirty.Input)
}

// HistoryUp selects the next older entry, stopping at the oldest.
func (s *State) HistoryUp() {
	defer s.guard.Enter("HistoryUp")()

	s.histIndex = min(s.histIndex+1, len(s.history)-1)
	s.cursor, s.visible = 0, 0
	s.dirty.Mark(dirty.Input)
}

// HistoryDown selects the next newer entry, stopping at entry 0.
func (s *State) HistoryDown() {
	defer s.guard.Enter("HistoryDown")()

	s.histIndex = max(s.histIndex-1, 0)
	s.cursor, s.visible = 0, 0
	s.dirty.Mark(dirty.Input)
}

// Escape abandons the edit: entry 0 is selected and cleared.
func (s *State) Escape() {
	defer s.guard.Enter("Escape")()

	s.histIndex = 0
	s.history[0] = nil
	s.cursor, s.visible = 0, 0
	s.dirty.Mark(dirty.Input)
}

// Submit returns the entry being edited and starts a new blank entry.
// A recalled history entry is submitted as the newest entry.
func (s *State) Submit() string {
	defer s.guard.Enter("Submit")()

	line := s.current()
	if s.histIndex != 0 {
		s.history[0] = append([]rune(nil), line...)
	}
	s.history = append([][]rune{nil}, s.history...)
	s.histIndex = 0
	s.cursor, s.visible = 0, 0
	s.evictHistory()
	s.dirty.Mark(dirty.Input)
	return string(line)
}

func (s *State) evictHistory() {
	// Entry 0 is the one being composed and does not count.
	if s.historyLimit <= 0 || len(s.history)-1 <= s.historyLimit {
		return
	}
	s.history = s.history[:s.historyLimit+1]
	if s.histIndex >= len(s.history) {
		s.histIndex = len(s.history) - 1
		s.cursor, s.visible = 0, 0
	}
}

// ScrollUp moves the view one line up and stops following output.
func (s *State) ScrollUp() {
	defer s.guard.Enter("ScrollUp")()

	s.scroll = max(0, s.scroll-1)
	s.autoscroll = false
	s.dirty.Mark(dirty.Output)
}

// ScrollDown moves the view one line down. Following output resumes when
// the top row reaches the last line.
func (s *State) ScrollDown() {
	defer s.guard.Enter("ScrollDown")()

	last := len(s.scrollback) - 1
	s.scroll = max(0, min(s.scroll+1, last))
	if last < 0 || s.scroll == last {
		s.autoscroll = true
	}
	s.dirty.Mark(dirty.Output)
}

// ClearOutput empties the scrollback and resumes autoscroll.
func (s *State) ClearOutput() {
	defer s.guard.Enter("ClearOutput")()

	s.scrollback = nil
	s.scroll = 0
	s.autoscroll = true
	s.dirty.Mark(dirty.Output)
}

// AppendOutput adds a line to the scrollback.
func (s *State) AppendOutput(line string) {
	defer s.guard.Enter("AppendOutput")()

	s.scrollback = append(s.scrollback, line)
	if bottom := len(s.scrollback) - s.outputRows(); s.autoscroll && s.scroll < bottom {
		s.scroll = bottom
	}
	s.evictScrollback()
	s.dirty.Mark(dirty.Output)
}

func (s *State) evictScrollback() {
	if s.scrollbackLimit <= 0 || len(s.scrollback) <= s.scrollbackLimit {
		return
	}
	drop := len(s.scrollback) - s.scrollbackLimit
	s.scrollback = append(s.scrollback[:0:0], s.scrollback[drop:]...)
	s.scroll = max(0, s.scroll-drop)
}
