package main

import (
	"fmt"
	"os"
	"time"
	"unsafe"

	"github.com/gdamore/tcell/v2"

	"vgaos/device/tty"
	"vgaos/device/video/console"
	"vgaos/kernel/hal"
	"vgaos/kernel/kfmt"
)

// placeholderRune is how the terminal's 0xFE placeholder glyph is shown on
// the host.
const placeholderRune = '■'

// viewer runs the kernel terminal stack over a host framebuffer and mirrors
// it onto a tcell screen.
type viewer struct {
	screen tcell.Screen

	// fb backs buf; buf only holds its address.
	fb   []uint16
	buf  console.Buffer
	term *tty.SharedWriter
}

func newViewer(screen tcell.Screen) *viewer {
	v := &viewer{
		screen: screen,
		fb:     make([]uint16, console.Width*console.Height),
	}

	v.buf = console.NewBuffer(uintptr(unsafe.Pointer(&v.fb[0])))
	v.term = hal.InitTerminal(v.buf)
	kfmt.SetOutputSink(v.term)

	return v
}

// draw copies every cell of the framebuffer to the screen. The terminal lock
// is held so that a half-written line is never shown.
func (v *viewer) draw() {
	v.term.Lock()
	for row := 0; row < console.Height; row++ {
		for col := 0; col < console.Width; col++ {
			sc := v.buf.Read(row, col)
			v.screen.SetContent(col, row, cellRune(sc.Char), nil, cellStyle(sc.Color))
		}
	}
	v.term.Unlock()

	v.screen.Show()
}

// handleEvent feeds key presses through the kernel printer. It returns true
// when the viewer should exit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			kfmt.Printfln("")
		case tcell.KeyRune:
			kfmt.Printf("%s", string(ev.Rune()))
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}

	return false
}

func (v *viewer) run() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			if v.handleEvent(ev) {
				return
			}
			v.draw()
		case <-ticker.C:
			v.draw()
		}
	}
}

func cellRune(b byte) rune {
	switch {
	case b >= 0x20 && b <= 0x7e:
		return rune(b)
	case b == 0xfe:
		return placeholderRune
	default:
		return ' '
	}
}

func cellStyle(cc console.ColorCode) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(cc.Foreground())).
		Background(tcellColor(cc.Background()))
}

func tcellColor(c console.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func runTool() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := newViewer(screen)
	kfmt.Printfln("vgaview: %dx%d text mode at 0x%x", console.Width, console.Height, console.PhysAddr)
	kfmt.Printfln("type to print; esc quits")
	v.run()

	return nil
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "[vgaview] error: %s\n", err.Error())
	os.Exit(1)
}

func main() {
	if err := runTool(); err != nil {
		exit(err)
	}
}
