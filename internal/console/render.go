package console

import (
	"github.com/dshills/replterm/internal/renderer/backend"
	"github.com/dshills/replterm/internal/renderer/core"
	"github.com/dshills/replterm/internal/renderer/dirty"
)

// Draw repaints the dirty regions of s onto b and flushes the display.
// It does nothing when no region is dirty.
//
// Layout: the output pane fills rows 0..h-3, the status bar is row h-2 and
// the input line is row h-1.
func Draw(b backend.Backend, s *State) {
	regions := s.dirty.Take()
	if regions == dirty.None {
		return
	}
	w, h := s.width, s.height

	if regions.Has(dirty.Output) {
		for y := 0; y < s.outputRows(); y++ {
			line := ""
			if i := s.scroll + y; i >= 0 && i < len(s.scrollback) {
				line = s.scrollback[i]
			}
			backend.DrawString(b, 0, y, w, line, core.DefaultStyle())
		}
	}

	if regions.Has(dirty.Status) && h >= 2 {
		backend.DrawString(b, 0, h-2, w, s.status, core.StatusStyle())
	}

	if regions.Has(dirty.Input) && h >= 1 {
		drawInput(b, s, h-1)
	}

	b.Show()
}

func drawInput(b backend.Backend, s *State, y int) {
	cur := s.current()
	for x := 0; x < s.width; x++ {
		i := s.visible + x
		r := ' '
		if i < len(cur) && x < s.width-1 {
			r = cur[i]
		}
		style := core.DefaultStyle()
		if i == s.cursor && x < s.width-1 {
			style = style.Reverse()
		}
		b.SetCell(x, y, core.NewStyledCell(r, style))
	}
}
