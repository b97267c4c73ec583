package core

import "testing"

func TestColorDefault(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault.IsDefault() = false")
	}
	if ColorBlack.IsDefault() {
		t.Error("ColorBlack.IsDefault() = true")
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q, want %q", got, "default")
	}
	if got := ColorFromRGB(0x12, 0xAB, 0xFF).String(); got != "#12ABFF" {
		t.Errorf("String() = %q, want %q", got, "#12ABFF")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().WithForeground(ColorBlack).WithBackground(ColorWhite)
	if s != StatusStyle() {
		t.Errorf("style = %+v, want StatusStyle()", s)
	}

	r := s.Reverse()
	if !r.Attributes.Has(AttrReverse) {
		t.Error("Reverse() did not set AttrReverse")
	}
	if s.Attributes.Has(AttrReverse) {
		t.Error("Reverse() modified the receiver")
	}
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if c.Rune != ' ' || c.Style != DefaultStyle() {
		t.Errorf("EmptyCell() = %+v", c)
	}
}
