package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellSurface adapts a tcell.Screen to Surface
// tcell keeps its own cell buffer and diffs on Show; the animation still paints cell by cell
// The screen runs in raw mode, so Ctrl-C arrives as a key event rather than SIGINT
type TcellSurface struct {
	screen      tcell.Screen
	onInterrupt func()

	pumpDone chan struct{}
	finiOnce sync.Once
}

// NewTcellSurface wraps an already initialized screen and starts draining its events
// onInterrupt is called on Ctrl-C or Esc; nil ignores them
func NewTcellSurface(screen tcell.Screen, onInterrupt func()) *TcellSurface {
	s := &TcellSurface{
		screen:      screen,
		onInterrupt: onInterrupt,
		pumpDone:    make(chan struct{}),
	}
	go s.pump()
	return s
}

// pump reads events until the screen is finalized
func (s *TcellSurface) pump() {
	defer close(s.pumpDone)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && isInterrupt(key) && s.onInterrupt != nil {
			s.onInterrupt()
		}
	}
}

func isInterrupt(key *tcell.EventKey) bool {
	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	}
	return false
}

// OpenTcellSurface creates and initializes a screen on the controlling terminal
func OpenTcellSurface(onInterrupt func()) (*TcellSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewTcellSurface(screen, onInterrupt), nil
}

// cellStyle returns the style a glyph of color fg is drawn with
func cellStyle(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
}

func (s *TcellSurface) Clear() {
	s.screen.Clear()
}

func (s *TcellSurface) SetCell(row, col int, r rune, fg RGB) {
	style := tcell.StyleDefault
	if r != ' ' {
		style = cellStyle(fg)
	}
	s.screen.SetContent(col-1, row-1, r, nil, style)
}

func (s *TcellSurface) SetText(row, col int, text string, fg RGB) {
	style := cellStyle(fg)
	x := col - 1
	for _, r := range text {
		s.screen.SetContent(x, row-1, r, nil, style)
		x += RuneWidth(r)
	}
}

func (s *TcellSurface) HideCursor() {
	s.screen.HideCursor()
}

// ShowCursor parks the cursor on the bottom-left cell
func (s *TcellSurface) ShowCursor() {
	_, h := s.screen.Size()
	s.screen.ShowCursor(0, h-1)
}

// Reset is a no-op; tcell styles are per cell
func (s *TcellSurface) Reset() {}

func (s *TcellSurface) Size() (int, int) {
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return DefaultCols, DefaultRows
	}
	return w, h
}

func (s *TcellSurface) Flush() error {
	s.screen.Show()
	return nil
}

// Fini leaves the tcell screen and restores the terminal
func (s *TcellSurface) Fini() {
	s.finiOnce.Do(func() {
		s.screen.Fini()
		<-s.pumpDone
	})
}
