package backend

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/replterm/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen        tcell.Screen
	resizeHandler func(width, height int)
	mu            sync.Mutex

	// Bracketed paste content arrives as key events between a start and an
	// end marker; it is collected and delivered as one EventPaste.
	pasting bool
	paste   strings.Builder
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen), nil
}

func newTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) OnResize(callback func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeHandler = callback
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() (Event, bool) {
	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{}, false
		}
		if out, ok := t.convertEvent(ev); ok {
			return out, true
		}
	}
	return Event{}, false
}

func (t *Terminal) PostEvent(event Event) {
	// Only key events can be synthesized.
	if event.Type == EventKey {
		tcellEv := tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
		_ = t.screen.PostEvent(tcellEv) // best-effort; event queue may be full
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

// convertEvent converts a tcell event. ok is false for events that are
// consumed internally or not surfaced.
func (t *Terminal) convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if t.pasting {
			switch e.Key() {
			case tcell.KeyRune:
				t.paste.WriteRune(e.Rune())
			case tcell.KeyEnter:
				t.paste.WriteByte('\n')
			case tcell.KeyTab:
				t.paste.WriteByte('\t')
			}
			return Event{}, false
		}
		key, mod := convertKey(e.Key(), e.Rune(), convertMod(e.Modifiers()))
		return Event{
			Type: EventKey,
			Key:  key,
			Rune: e.Rune(),
			Mod:  mod,
		}, true

	case *tcell.EventResize:
		w, h := e.Size()
		t.mu.Lock()
		handler := t.resizeHandler
		t.mu.Unlock()
		if handler != nil {
			handler(w, h)
		}
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}, true

	case *tcell.EventPaste:
		if e.Start() {
			t.pasting = true
			t.paste.Reset()
			return Event{}, false
		}
		t.pasting = false
		return Event{
			Type:      EventPaste,
			PasteText: t.paste.String(),
		}, true

	default:
		return Event{}, false
	}
}

// namedKeys pairs tcell's named keys with ours. Function and control keys
// are contiguous in both enums and are mapped by offset instead.
var namedKeys = []struct {
	tcell tcell.Key
	key   Key
}{
	{tcell.KeyEscape, KeyEscape},
	{tcell.KeyEnter, KeyEnter},
	{tcell.KeyTab, KeyTab},
	{tcell.KeyBackspace2, KeyBackspace},
	{tcell.KeyBackspace, KeyBackspace},
	{tcell.KeyDelete, KeyDelete},
	{tcell.KeyInsert, KeyInsert},
	{tcell.KeyHome, KeyHome},
	{tcell.KeyEnd, KeyEnd},
	{tcell.KeyPgUp, KeyPageUp},
	{tcell.KeyPgDn, KeyPageDown},
	{tcell.KeyUp, KeyUp},
	{tcell.KeyDown, KeyDown},
	{tcell.KeyLeft, KeyLeft},
	{tcell.KeyRight, KeyRight},
}

var modPairs = []struct {
	tcell tcell.ModMask
	mod   ModMask
}{
	{tcell.ModShift, ModShift},
	{tcell.ModCtrl, ModCtrl},
	{tcell.ModAlt, ModAlt},
	{tcell.ModMeta, ModMeta},
}

// convertKey maps a tcell key to a Key. tcell reports some control letters
// under their ASCII names (Ctrl+H is Backspace, Ctrl+I is Tab, Ctrl+M is
// Enter); the named key wins for those. A rune typed with Ctrl held becomes
// the matching control key.
func convertKey(k tcell.Key, r rune, mod ModMask) (Key, ModMask) {
	if k == tcell.KeyRune {
		if mod.Has(ModCtrl) {
			if ck := CtrlKey(r); ck != KeyNone {
				return ck, mod
			}
		}
		return KeyRune, mod
	}
	for _, p := range namedKeys {
		if p.tcell == k {
			return p.key, mod
		}
	}

	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return KeyF1 + Key(k-tcell.KeyF1), mod
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return KeyCtrlA + Key(k-tcell.KeyCtrlA), mod | ModCtrl
	default:
		return KeyNone, mod
	}
}

// convertToTcellKey is the inverse of convertKey. Keys tcell cannot
// synthesize map to KeyRune.
func convertToTcellKey(k Key) tcell.Key {
	for _, p := range namedKeys {
		if p.key == k {
			return p.tcell
		}
	}

	switch {
	case k >= KeyF1 && k <= KeyF12:
		return tcell.KeyF1 + tcell.Key(k-KeyF1)
	case k.IsCtrl():
		return tcell.KeyCtrlA + tcell.Key(k-KeyCtrlA)
	default:
		return tcell.KeyRune
	}
}

func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	for _, p := range modPairs {
		if m&p.tcell != 0 {
			result |= p.mod
		}
	}
	return result
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	for _, p := range modPairs {
		if m&p.mod != 0 {
			result |= p.tcell
		}
	}
	return result
}
