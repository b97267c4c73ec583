package console

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/replterm/internal/renderer/dirty"
)

func typeText(s *State, text string) {
	for _, r := range text {
		s.Insert(r)
	}
}

func TestStateInsertAndEdit(t *testing.T) {
	s := NewState(20, 5)
	typeText(s, "abc")

	if s.Input() != "abc" || s.Cursor() != 3 {
		t.Fatalf("Input() = %q, Cursor() = %d", s.Input(), s.Cursor())
	}

	s.Left()
	s.Backspace()
	if s.Input() != "ac" || s.Cursor() != 1 {
		t.Errorf("after Backspace Input() = %q, Cursor() = %d, want ac, 1", s.Input(), s.Cursor())
	}

	s.Delete()
	if s.Input() != "a" || s.Cursor() != 1 {
		t.Errorf("after Delete Input() = %q, Cursor() = %d, want a, 1", s.Input(), s.Cursor())
	}

	// At the end of the entry Delete does nothing; at the start Backspace does nothing.
	s.Delete()
	s.Left()
	s.Backspace()
	if s.Input() != "a" || s.Cursor() != 0 {
		t.Errorf("no-op edits changed entry: %q, cursor %d", s.Input(), s.Cursor())
	}
}

func TestStateCursorClamp(t *testing.T) {
	s := NewState(20, 5)
	typeText(s, "ab")

	s.Right()
	if s.Cursor() != 2 {
		t.Errorf("Right past end: Cursor() = %d, want 2", s.Cursor())
	}
	s.Left()
	s.Left()
	s.Left()
	if s.Cursor() != 0 {
		t.Errorf("Left past start: Cursor() = %d, want 0", s.Cursor())
	}
}

func TestStateOverwrite(t *testing.T) {
	s := NewState(20, 5)
	typeText(s, "abc")
	s.Left()
	s.Left()
	s.Left()

	s.ToggleOverwrite()
	if !s.Overwrite() {
		t.Fatal("Overwrite() = false after toggle")
	}
	typeText(s, "XY")
	if s.Input() != "XYc" {
		t.Errorf("Input() = %q, want XYc", s.Input())
	}

	// Past the end overwrite mode appends.
	typeText(s, "ZW")
	if s.Input() != "XYZW" {
		t.Errorf("Input() = %q, want XYZW", s.Input())
	}
}

func TestStateHorizontalScroll(t *testing.T) {
	// width 20: the view shifts by 5 when the cursor reaches column 18
	s := NewState(20, 5)

	typeText(s, strings.Repeat("x", 17))
	if s.Visible() != 0 {
		t.Fatalf("Visible() = %d after 17 runes, want 0", s.Visible())
	}
	s.Insert('y')
	if s.Visible() != 5 {
		t.Fatalf("Visible() = %d after 18 runes, want 5", s.Visible())
	}

	for s.Cursor() > 7 {
		s.Left()
	}
	if s.Visible() != 5 {
		t.Errorf("Visible() = %d at cursor 7, want 5", s.Visible())
	}
	s.Left()
	if s.Visible() != 0 {
		t.Errorf("Visible() = %d at cursor 6, want 0", s.Visible())
	}

	for i := 0; i < 30; i++ {
		s.Right()
	}
	if s.Cursor() != 18 {
		t.Errorf("Cursor() = %d, want 18", s.Cursor())
	}
	if c, v := s.Cursor(), s.Visible(); c < v || c-v > 18 {
		t.Errorf("cursor %d outside visible window starting at %d", c, v)
	}
}

func TestStateHorizontalScrollPaste(t *testing.T) {
	s := NewState(10, 5)
	s.InsertText(strings.Repeat("z", 40))

	if c, v := s.Cursor(), s.Visible(); c < v || c-v > 8 {
		t.Errorf("cursor %d outside visible window starting at %d", c, v)
	}
}

func TestStateHistoryClamp(t *testing.T) {
	s := NewState(20, 5)
	typeText(s, "first")
	s.Submit()
	typeText(s, "second")
	s.Submit()

	want := []string{"", "second", "first"}
	if got := s.History(); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("History() = %q, want %q", got, want)
	}

	steps := []struct {
		up        bool
		wantIndex int
		wantInput string
	}{
		{true, 1, "second"},
		{true, 2, "first"},
		{true, 2, "first"},
		{false, 1, "second"},
		{false, 0, ""},
		{false, 0, ""},
	}
	for i, st := range steps {
		typeText(s, "")
		s.Right()
		if st.up {
			s.HistoryUp()
		} else {
			s.HistoryDown()
		}
		if s.HistoryIndex() != st.wantIndex || s.Input() != st.wantInput {
			t.Errorf("step %d: index %d input %q, want %d %q", i, s.HistoryIndex(), s.Input(), st.wantIndex, st.wantInput)
		}
		if s.Cursor() != 0 || s.Visible() != 0 {
			t.Errorf("step %d: cursor %d visible %d, want 0 0", i, s.Cursor(), s.Visible())
		}
	}
}

func TestStateSubmitRecalled(t *testing.T) {
	s := NewState(20, 5)
	typeText(s, "one")
	s.Submit()
	typeText(s, "two")
	s.Submit()

	s.HistoryUp()
	s.HistoryUp()
	if got := s.Submit(); got != "one" {
		t.Errorf("Submit() = %q, want one", got)
	}
	want := []string{"", "one", "two", "one"}
	if got := s.History(); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("History() = %q, want %q", got, want)
	}
	if s.HistoryIndex() != 0 || s.Cursor() != 0 {
		t.Errorf("index %d cursor %d after Submit, want 0 0", s.HistoryIndex(), s.Cursor())
	}
}

func TestStateEscape(t *testing.T) {
	s := NewState(20, 5)
	typeText(s, "old")
	s.Submit()
	typeText(s, "draft")
	s.HistoryUp()

	s.Escape()
	if s.HistoryIndex() != 0 || s.Input() != "" || s.Cursor() != 0 {
		t.Errorf("after Escape index %d input %q cursor %d", s.HistoryIndex(), s.Input(), s.Cursor())
	}
}

func TestStateAutoscroll(t *testing.T) {
	// height 5 leaves 3 output rows
	s := NewState(20, 5)
	for i := 0; i < 10; i++ {
		s.AppendOutput(fmt.Sprint(i))
	}
	if s.Scroll() != 7 || !s.Autoscroll() {
		t.Fatalf("Scroll() = %d, Autoscroll() = %v, want 7, true", s.Scroll(), s.Autoscroll())
	}

	s.ScrollUp()
	if s.Scroll() != 6 || s.Autoscroll() {
		t.Errorf("after ScrollUp: %d, %v, want 6, false", s.Scroll(), s.Autoscroll())
	}

	s.AppendOutput("10")
	if s.Scroll() != 6 {
		t.Errorf("new output moved the view while not following: %d", s.Scroll())
	}

	// 11 lines: autoscroll resumes only when the top row is line 10.
	for want := 7; want <= 10; want++ {
		s.ScrollDown()
		if s.Scroll() != want {
			t.Fatalf("Scroll() = %d, want %d", s.Scroll(), want)
		}
		if s.Autoscroll() != (want == 10) {
			t.Errorf("at %d Autoscroll() = %v", want, s.Autoscroll())
		}
	}
	s.ScrollDown()
	if s.Scroll() != 10 || !s.Autoscroll() {
		t.Errorf("ScrollDown past end: %d, %v", s.Scroll(), s.Autoscroll())
	}

	for i := 0; i < 20; i++ {
		s.ScrollUp()
	}
	if s.Scroll() != 0 {
		t.Errorf("ScrollUp past start: %d", s.Scroll())
	}
}

func TestStateScrollEmpty(t *testing.T) {
	s := NewState(20, 5)
	s.ScrollUp()
	s.ScrollDown()
	if s.Scroll() != 0 || !s.Autoscroll() {
		t.Errorf("empty scrollback: Scroll() = %d, Autoscroll() = %v", s.Scroll(), s.Autoscroll())
	}
}

func TestStateScrollbackLimit(t *testing.T) {
	s := NewState(20, 5)
	s.SetLimits(0, 5)

	for i := 0; i < 8; i++ {
		s.AppendOutput(fmt.Sprint(i))
	}
	want := []string{"3", "4", "5", "6", "7"}
	if got := s.Scrollback(); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Scrollback() = %q, want %q", got, want)
	}
	// The view still shows the last three lines.
	if s.Scroll() != 2 {
		t.Errorf("Scroll() = %d, want 2", s.Scroll())
	}

	// While scrolled back, eviction shifts the offset with the lines.
	s.ScrollUp()
	s.AppendOutput("8")
	if got := s.Scrollback()[s.Scroll()]; got != "4" {
		t.Errorf("top line = %q, want 4", got)
	}
}

func TestStateHistoryLimit(t *testing.T) {
	s := NewState(20, 5)
	s.SetLimits(2, 0)

	for _, line := range []string{"a", "b", "c"} {
		typeText(s, line)
		s.Submit()
	}
	want := []string{"", "c", "b"}
	if got := s.History(); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("History() = %q, want %q", got, want)
	}
}

func TestStateDirtyRegions(t *testing.T) {
	s := NewState(20, 5)
	s.dirty.Take()

	tests := []struct {
		name string
		do   func()
		want dirty.Region
	}{
		{"insert", func() { s.Insert('a') }, dirty.Input},
		{"status", func() { s.SetStatus("x") }, dirty.Status},
		{"output", func() { s.AppendOutput("x") }, dirty.Output},
		{"scroll", func() { s.ScrollUp() }, dirty.Output},
		{"resize", func() { s.SetSize(30, 6) }, dirty.All},
	}

	for _, tt := range tests {
		tt.do()
		if got := s.dirty.Take(); got != tt.want {
			t.Errorf("%s: dirty = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStateClearOutput(t *testing.T) {
	s := NewState(20, 5)
	for i := 0; i < 10; i++ {
		s.AppendOutput(fmt.Sprint(i))
	}
	s.ScrollUp()
	s.dirty.Take()

	s.ClearOutput()
	if len(s.Scrollback()) != 0 || s.Scroll() != 0 || !s.Autoscroll() {
		t.Errorf("after ClearOutput: %q scroll %d autoscroll %v", s.Scrollback(), s.Scroll(), s.Autoscroll())
	}
	if got := s.dirty.Take(); got != dirty.Output {
		t.Errorf("dirty = %v, want output", got)
	}
}
