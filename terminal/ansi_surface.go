// @lixen: #focus{sys[term,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// ANSISurface writes cursor-addressed cells straight to an output stream
// Nothing is retained between writes; the terminal itself holds the picture
type ANSISurface struct {
	writer    *bufio.Writer
	colorMode ColorMode
	sizeFn    func() (int, int)

	finiOnce sync.Once
}

// NewANSISurface creates a surface over w
// A nil sizeFn reports the 80x24 fallback
func NewANSISurface(w io.Writer, colorMode ColorMode, sizeFn func() (int, int)) *ANSISurface {
	return &ANSISurface{
		writer:    bufio.NewWriterSize(w, 32768),
		colorMode: colorMode,
		sizeFn:    sizeFn,
	}
}

// NewStdoutSurface creates a surface on os.Stdout sized from its fd
func NewStdoutSurface(colorMode ColorMode) *ANSISurface {
	fd := int(os.Stdout.Fd())
	return NewANSISurface(os.Stdout, colorMode, func() (int, int) {
		return Size(fd)
	})
}

// ColorMode returns the foreground encoding in use
func (s *ANSISurface) ColorMode() ColorMode {
	return s.colorMode
}

func (s *ANSISurface) Clear() {
	s.writer.Write(csiClear)
}

func (s *ANSISurface) SetCell(row, col int, r rune, fg RGB) {
	w := s.writer
	writeCursorPos(w, row, col)
	if r == ' ' {
		w.WriteByte(' ')
		return
	}
	writeFg(w, fg, s.colorMode)
	w.WriteRune(r)
	w.Write(csiSGR0)
}

func (s *ANSISurface) SetText(row, col int, text string, fg RGB) {
	w := s.writer
	writeCursorPos(w, row, col)
	writeFg(w, fg, s.colorMode)
	w.WriteString(text)
	w.Write(csiSGR0)
}

func (s *ANSISurface) HideCursor() {
	s.writer.Write(csiCursorHide)
}

func (s *ANSISurface) ShowCursor() {
	s.writer.Write(csiCursorShow)
}

func (s *ANSISurface) Reset() {
	s.writer.Write(csiSGR0)
}

func (s *ANSISurface) Size() (int, int) {
	if s.sizeFn == nil {
		return DefaultCols, DefaultRows
	}
	return s.sizeFn()
}

func (s *ANSISurface) Flush() error {
	return s.writer.Flush()
}

// Fini resets styling and shows the cursor
func (s *ANSISurface) Fini() {
	s.finiOnce.Do(func() {
		s.writer.Write(csiSGR0)
		s.writer.Write(csiCursorShow)
		s.writer.Flush()
	})
}
